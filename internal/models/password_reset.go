// Package models defines the data structures exchanged between the
// storage layer, the services and the API.
//
// The password_reset.go file defines the stored reset token record and
// the request shapes of the password reset flow.
package models

import "time"

// PasswordResetToken is a stored reset token. Only the SHA-256 hash of
// the raw token is persisted; the raw token exists only inside the
// email sent to the user. One row per user: issuing a new token
// replaces any outstanding one.
type PasswordResetToken struct {
	UserID    int64     `json:"user_id"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsExpired reports whether the token has passed its expiry.
func (t *PasswordResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

// ForgotPasswordRequest is the request body for initiating a reset.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest is the request body for completing a reset. The
// token itself travels in the URL path.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=128"`
}
