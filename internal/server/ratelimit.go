package server

import (
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

// rateLimit rejects API requests beyond the limiter's budget with a 429
// problem. Health and metrics are never limited.
func rateLimit(limiter *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") && r.URL.Path != "/api/v1/health" && !limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			RateLimited(w, "request rate exceeded, retry later", r.URL.Path)
			return
		}
		next.ServeHTTP(w, r)
	})
}
