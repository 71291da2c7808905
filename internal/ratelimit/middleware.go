package ratelimit

import (
	"net/http"
	"strings"
)

// KeyFunc extracts the rate limit key from a request. An empty key skips
// limiting.
type KeyFunc func(r *http.Request) string

// Middleware rejects requests over the limit with deny, which must write
// the response. Limiter errors let the request through.
func Middleware(limiter Limiter, keyFunc KeyFunc, deny http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}
			ok, err := limiter.Allow(r.Context(), key)
			if err == nil && !ok {
				w.Header().Set("Retry-After", "1")
				deny(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IPKeyFunc keys on RemoteAddr without the port. X-Forwarded-For is not
// trusted.
func IPKeyFunc(r *http.Request) string {
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}
