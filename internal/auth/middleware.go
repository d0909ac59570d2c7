// Package auth implements credential handling.
//
// The middleware.go file verifies the session cookie and attaches a
// typed Principal to the request context. Handlers retrieve it with
// GetPrincipal instead of reaching into framework internals.
package auth

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/gsvlabs/storefront-backend/internal/constants"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// Principal identifies the authenticated caller of a request.
type Principal struct {
	UserID int64
	Email  string
}

type contextKey string

// principalContextKey is the context key under which the Principal is
// stored.
const principalContextKey contextKey = "principal"

// TokenVerifier verifies a session token and returns its claims.
type TokenVerifier interface {
	ValidateToken(tokenString string) (*SessionClaims, error)
}

// RequireAuth returns middleware that rejects requests without a valid
// session cookie and attaches the Principal to the context for the
// rest of the chain.
func RequireAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := principalFromRequest(r, verifier)
			if err != nil {
				appErr := utils.ParseError(err)
				log.Debug().
					Str("path", r.URL.Path).
					Str("reason", appErr.Code).
					Msg("Rejected unauthenticated request")
				utils.ErrorFromAppError(w, appErr)
				return
			}

			ctx := WithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithPrincipal returns a context carrying the given principal.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// GetPrincipal retrieves the authenticated principal from the context.
// It returns false when the request did not pass through RequireAuth.
func GetPrincipal(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(*Principal)
	return p, ok
}

// PrincipalFromRequest verifies the session cookie on r without
// requiring middleware, for endpoints that report session status
// rather than enforce it.
func PrincipalFromRequest(r *http.Request, verifier TokenVerifier) (*Principal, error) {
	return principalFromRequest(r, verifier)
}

func principalFromRequest(r *http.Request, verifier TokenVerifier) (*Principal, error) {
	cookie, err := r.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, utils.NewUnauthorizedError("")
	}

	claims, err := verifier.ValidateToken(cookie.Value)
	if err != nil {
		return nil, err
	}

	return &Principal{
		UserID: claims.UserID,
		Email:  claims.Email,
	}, nil
}
