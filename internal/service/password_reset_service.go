// Package service implements the application's business logic.
//
// The password_reset_service.go file implements the forgot/reset
// password flow. A raw token travels to the user by email; the server
// keeps only its SHA-256 hash, at most one per user, valid for 30
// minutes. A consumed token is deleted so it cannot be replayed.
package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gsvlabs/storefront-backend/internal/auth"
	"github.com/gsvlabs/storefront-backend/internal/constants"
	"github.com/gsvlabs/storefront-backend/internal/models"
	"github.com/gsvlabs/storefront-backend/internal/repository"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// ResetMailer sends password reset emails.
type ResetMailer interface {
	SendPasswordResetEmail(toEmail, name, rawToken string) error
}

// PasswordResetService implements the password reset flow.
type PasswordResetService struct {
	users   UserStore
	tokens  ResetTokenStore
	mailer  ResetMailer
	hashCfg *auth.PasswordConfig
}

// NewPasswordResetService creates a password reset service.
func NewPasswordResetService(users UserStore, tokens ResetTokenStore, mailer ResetMailer, hashCfg *auth.PasswordConfig) *PasswordResetService {
	return &PasswordResetService{users: users, tokens: tokens, mailer: mailer, hashCfg: hashCfg}
}

// ForgotPassword issues a reset token for the account with the given
// email and mails the raw token to it. Any previous token for the user
// is replaced. If the email cannot be delivered the token stays stored,
// so a retry within the expiry window still works.
func (s *PasswordResetService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	rawToken, err := repository.GenerateToken(user.ID)
	if err != nil {
		return utils.NewInternalServerError(err)
	}

	token := &models.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: repository.HashToken(rawToken),
		ExpiresAt: time.Now().Add(constants.ResetTokenDuration),
	}
	if err := s.tokens.Upsert(ctx, token); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordResetEmail(user.Email, user.Name, rawToken); err != nil {
		return err
	}

	utils.LogAuth(constants.LogEventPasswordReset, user.ID, user.Email, true)
	return nil
}

// ResetPassword completes a reset: the raw token from the emailed link
// is hashed and looked up, the new password is stored, and the token is
// deleted. Unknown and expired tokens are indistinguishable to the
// caller.
func (s *PasswordResetService) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	if err := utils.ValidatePassword(newPassword); err != nil {
		return err
	}

	token, err := s.tokens.GetByTokenHash(ctx, repository.HashToken(rawToken))
	if err != nil {
		return err
	}

	hash, salt, err := auth.HashPassword(newPassword, s.hashCfg)
	if err != nil {
		return utils.NewInternalServerError(err)
	}

	if err := s.users.UpdatePassword(ctx, token.UserID, hash, salt); err != nil {
		return err
	}

	if err := s.tokens.DeleteByUserID(ctx, token.UserID); err != nil {
		// The password is already changed; the leftover token is dead
		// weight and will be swept by maintenance.
		log.Warn().Err(err).Int64("user_id", token.UserID).Msg("Failed to delete consumed reset token")
	}

	utils.LogAuth(constants.LogEventPasswordReset, token.UserID, "", true)
	return nil
}

// SweepExpiredTokens deletes all reset tokens past their expiry and
// returns how many were removed. The server's maintenance loop calls
// this hourly.
func (s *PasswordResetService) SweepExpiredTokens(ctx context.Context) (int64, error) {
	deleted, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Msg("Swept expired password reset tokens")
	}
	return deleted, nil
}
