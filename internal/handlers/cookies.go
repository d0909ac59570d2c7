// Package handlers implements the HTTP endpoints of the API.
//
// The cookies.go file manages the session cookie. The cookie is
// HTTP-only and SameSite=None so the browser frontend on a different
// origin can send it with credentialed requests.
package handlers

import (
	"net/http"
	"time"

	"github.com/gsvlabs/storefront-backend/internal/constants"
)

// setSessionCookie attaches a session token to the response.
func setSessionCookie(w http.ResponseWriter, token string, duration time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     constants.SessionCookiePath,
		Expires:  time.Now().Add(duration),
		MaxAge:   int(duration.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteNoneMode,
	})
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     constants.SessionCookiePath,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteNoneMode,
	})
}
