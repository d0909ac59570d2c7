// Package middleware provides the HTTP middleware shared by all
// routes: panic recovery, security headers, request logging and rate
// limiting for credential endpoints.
package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// Recovery converts panics in downstream handlers into 500 responses
// instead of crashing the connection.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("Recovered from panic in handler")

				utils.InternalServerError(w, "")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
