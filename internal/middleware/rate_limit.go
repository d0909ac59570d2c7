package middleware

import (
	"net"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/gsvlabs/storefront-backend/internal/utils"
	"github.com/gsvlabs/storefront-backend/internal/utils/ratelimit"
)

// RateLimit throttles requests per client IP using the given limiter.
// It guards the credential endpoints (login, register, password reset)
// against brute forcing.
func RateLimit(limiter *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)
			if !limiter.Allow(key) {
				retryAfter := int(limiter.RetryAfter(key).Seconds()) + 1
				log.Warn().
					Str("remote", key).
					Str("path", r.URL.Path).
					Msg("Rate limit exceeded")
				utils.TooManyRequests(w, retryAfter)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the client address, preferring X-Forwarded-For when
// a proxy set it.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
