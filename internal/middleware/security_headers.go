package middleware

import (
	"net/http"

	"github.com/gsvlabs/storefront-backend/internal/constants"
)

// SecurityHeaders sets response headers that harden the API against
// content sniffing, framing and caching of credentialed responses.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set(constants.HeaderCacheControl, constants.CacheControlNoStore)

		next.ServeHTTP(w, r)
	})
}
