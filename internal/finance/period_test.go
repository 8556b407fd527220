package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"week", "Week", "MONTH", "year"} {
		p, err := ParsePeriod(s)
		assert.NoError(t, err)
		assert.NotEmpty(t, p)
	}

	_, err := ParsePeriod("fortnight")
	assert.Error(t, err)
}

func TestFilterByPeriod_WeekBoundaries(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	weekAgo := now.AddDate(0, 0, -7)

	txs := []Transaction{
		{ID: "at-now", Date: now},
		{ID: "at-start", Date: weekAgo},
		{ID: "just-outside", Date: weekAgo.Add(-time.Millisecond)},
		{ID: "future", Date: now.Add(time.Millisecond)},
		{ID: "inside", Date: now.AddDate(0, 0, -3)},
	}

	filtered := FilterByPeriod(txs, now, PeriodWeek)

	ids := make([]string, len(filtered))
	for i, tx := range filtered {
		ids[i] = tx.ID
	}
	assert.Equal(t, []string{"at-now", "at-start", "inside"}, ids, "inclusive endpoints, order preserved")
}

func TestFilterByPeriod_NowIncludedInEveryPeriod(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	txs := []Transaction{{ID: "now", Date: now}}

	for _, p := range []Period{PeriodWeek, PeriodMonth, PeriodYear} {
		assert.Len(t, FilterByPeriod(txs, now, p), 1, string(p))
	}
}

func TestFilterByPeriod_Idempotent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	txs := []Transaction{
		{ID: "a", Date: now.AddDate(0, 0, -1)},
		{ID: "b", Date: now.AddDate(0, 0, -20)},
		{ID: "c", Date: now.AddDate(0, 0, -6)},
	}

	once := FilterByPeriod(txs, now, PeriodWeek)
	twice := FilterByPeriod(once, now, PeriodWeek)
	assert.Equal(t, once, twice)
}

func TestFilterByPeriod_UnrecognizedReturnsInput(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	txs := []Transaction{
		{ID: "ancient", Date: now.AddDate(-10, 0, 0)},
		{ID: "future", Date: now.AddDate(1, 0, 0)},
	}

	assert.Equal(t, txs, FilterByPeriod(txs, now, Period("quarter")))
}

// Pins time.AddDate normalization for month subtraction: March 31 minus one
// month normalizes to March 3 in a non-leap year (February 31 rolls forward).
func TestPeriodStart_MonthEndNormalization(t *testing.T) {
	now := time.Date(2025, 3, 31, 10, 0, 0, 0, time.UTC)

	start, ok := PeriodMonth.Start(now)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC), start)

	// A transaction on March 2 falls outside the window, March 3 inside.
	txs := []Transaction{
		{ID: "out", Date: time.Date(2025, 3, 2, 23, 59, 0, 0, time.UTC)},
		{ID: "in", Date: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)},
	}
	filtered := FilterByPeriod(txs, now, PeriodMonth)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "in", filtered[0].ID)
}

func TestPeriodStart_LeapDayYearSubtraction(t *testing.T) {
	now := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	start, ok := PeriodYear.Start(now)
	assert.True(t, ok)
	// 2023-02-29 normalizes to 2023-03-01.
	assert.Equal(t, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), start)
}
