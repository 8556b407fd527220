package finance

import (
	"fmt"
	"strings"
	"time"
)

// Period is a relative time window anchored to "now".
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod converts a request string into a Period. Matching is
// case-insensitive.
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(s)) {
	case PeriodWeek:
		return PeriodWeek, nil
	case PeriodMonth:
		return PeriodMonth, nil
	case PeriodYear:
		return PeriodYear, nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Start returns the beginning of the window ending at now. Month and year
// subtraction follow time.AddDate normalization: subtracting one month from
// March 31 lands on March 3 (February 31 normalized forward), not on a
// clamped end-of-February. The second return is false for an unrecognized
// period.
func (p Period) Start(now time.Time) (time.Time, bool) {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7), true
	case PeriodMonth:
		return now.AddDate(0, -1, 0), true
	case PeriodYear:
		return now.AddDate(-1, 0, 0), true
	}
	return time.Time{}, false
}

// FilterByPeriod returns the transactions whose occurrence date falls inside
// the closed interval [start, now], preserving the input order. Both
// endpoints are inclusive; future-dated transactions are excluded. An
// unrecognized period returns the input unfiltered.
func FilterByPeriod(transactions []Transaction, now time.Time, period Period) []Transaction {
	start, ok := period.Start(now)
	if !ok {
		return transactions
	}

	filtered := make([]Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Date.Before(start) || tx.Date.After(now) {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered
}
