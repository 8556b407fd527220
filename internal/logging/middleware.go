package logging

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware creates a LogData per request, stores it in the request context
// for handlers to annotate, and emits one completion entry with method, path,
// status, and total duration.
func Middleware(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		logData.AddData("method", req.Method)
		logData.AddData("path", req.URL.Path)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(recorder, req.WithContext(WithLogData(req.Context(), logData)))

		logData.AddData("status", recorder.status)
		logData.AddData("durationMs", time.Since(start).Milliseconds())
		logData.Log().Info("Request.Complete")
	})
}
