// Package auth implements credential handling.
//
// The jwt.go file implements the session token service. Sessions are
// stateless JWTs signed with HMAC-SHA256 and carried in an HTTP-only
// cookie.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/gsvlabs/storefront-backend/internal/constants"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// SessionClaims are the claims carried by a session token.
type SessionClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies session tokens.
type JWTService struct {
	secret   []byte
	duration time.Duration
}

// NewJWTService creates a token service with the given signing secret
// and session duration.
func NewJWTService(secret string, duration time.Duration) *JWTService {
	return &JWTService{
		secret:   []byte(secret),
		duration: duration,
	}
}

// GenerateToken issues a signed session token for a user.
func (s *JWTService) GenerateToken(userID int64, email string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    constants.JWTIssuer,
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies a session token and returns its claims. An
// expired token maps to ErrExpiredToken; everything else invalid maps
// to ErrInvalidToken.
func (s *JWTService) ValidateToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, utils.ErrExpiredToken
		}
		return nil, utils.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == 0 {
		return nil, utils.ErrInvalidToken
	}

	return claims, nil
}

// SessionDuration returns how long issued tokens remain valid. Cookie
// expiry is kept in lockstep with token expiry.
func (s *JWTService) SessionDuration() time.Duration {
	return s.duration
}
