package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gsvlabs/storefront-backend/internal/auth"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

const testSessionTTL = 24 * time.Hour

// jsonRequest builds a request with a JSON body.
func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withPrincipal attaches an authenticated principal, standing in for
// the auth middleware.
func withPrincipal(r *http.Request, userID int64) *http.Request {
	ctx := auth.WithPrincipal(r.Context(), &auth.Principal{UserID: userID, Email: "jane@example.com"})
	return r.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func dataMap(t *testing.T, resp utils.Response) map[string]interface{} {
	t.Helper()
	m, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data is not an object")
	return m
}

// sessionCookie returns the session cookie set on the response, if any.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	return nil
}
