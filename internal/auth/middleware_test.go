package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsvlabs/storefront-backend/internal/constants"
)

func newAuthedRequest(t *testing.T, svc *JWTService, userID int64, email string) *http.Request {
	t.Helper()
	token, err := svc.GenerateToken(userID, email)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/users/getuser", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: token})
	return req
}

func TestRequireAuth_ValidSession(t *testing.T) {
	svc := NewJWTService(testJWTSecret, time.Hour)

	var captured *Principal
	handler := RequireAuth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := GetPrincipal(r.Context())
		require.True(t, ok)
		captured = p
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newAuthedRequest(t, svc, 42, "jane@example.com"))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, int64(42), captured.UserID)
	assert.Equal(t, "jane@example.com", captured.Email)
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	svc := NewJWTService(testJWTSecret, time.Hour)

	handler := RequireAuth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/getuser", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	expired := NewJWTService(testJWTSecret, -time.Minute)
	verifier := NewJWTService(testJWTSecret, time.Hour)

	handler := RequireAuth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newAuthedRequest(t, expired, 42, "jane@example.com"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPrincipalFromRequest(t *testing.T) {
	svc := NewJWTService(testJWTSecret, time.Hour)

	p, err := PrincipalFromRequest(newAuthedRequest(t, svc, 7, "a@b.com"), svc)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.UserID)

	_, err = PrincipalFromRequest(httptest.NewRequest(http.MethodGet, "/", nil), svc)
	assert.Error(t, err)
}

func TestGetPrincipal_AbsentFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := GetPrincipal(req.Context())
	assert.False(t, ok)
}
