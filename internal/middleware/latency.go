package middleware

import (
	"net/http"
	"time"
)

// Latency returns a middleware that delays every request by a fixed
// duration, simulating network latency against the mock backend. A
// non-positive delay disables it, which is how tests run.
func Latency(delay time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if delay <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			timer := time.NewTimer(delay)
			defer timer.Stop()

			select {
			case <-timer.C:
			case <-r.Context().Done():
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
