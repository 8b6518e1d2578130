package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	pkghttp "github.com/listdeck/listdeck/pkg/http"
)

// RateLimitByIP creates a middleware that rate limits requests by client IP.
// Applied to the credential endpoints to slow down guessing.
func RateLimitByIP(requestsPerMinute int) func(next http.Handler) http.Handler {
	return httprate.Limit(
		requestsPerMinute,
		time.Minute,
		httprate.WithKeyByRealIP(),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			pkghttp.WriteTooManyRequests(w, "Too many attempts, try again later")
		}),
	)
}
