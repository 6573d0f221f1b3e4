package middleware

import (
	"net/http"
	"time"

	"github.com/HAMZAOUI-AMENY/devops-api/internal/observability"
)

// Instrument returns a middleware that records every dispatched
// request into the metrics accumulator: one counter increment and one
// latency observation, applied exactly once after the handler has
// fully returned. The deferred recording also runs while a panic
// unwinds, so internal faults are counted like any other outcome.
func Instrument(metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			defer func() {
				metrics.RecordRequest()
				metrics.RecordLatency(time.Since(start).Seconds())
			}()

			next.ServeHTTP(w, r)
		})
	}
}
