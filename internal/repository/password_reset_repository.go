// Package repository implements data access for the application's
// models on top of PostgreSQL.
//
// The password_reset_repository.go file stores password reset tokens.
// Only SHA-256 hashes of tokens are persisted, one row per user; a new
// request replaces the previous token atomically.
package repository

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/gsvlabs/storefront-backend/internal/constants"
	"github.com/gsvlabs/storefront-backend/internal/database"
	"github.com/gsvlabs/storefront-backend/internal/models"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// PasswordResetRepository provides access to password reset tokens.
type PasswordResetRepository struct {
	db *database.Pool
}

// NewPasswordResetRepository creates a reset token repository backed by
// the pool.
func NewPasswordResetRepository(db *database.Pool) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

// GenerateToken produces a raw reset token for a user. The raw token is
// random hex with the user ID appended, so the reset endpoint can
// locate the record without a separate identifier. Only HashToken's
// output is ever stored.
func GenerateToken(userID int64) (string, error) {
	buf := make([]byte, constants.ResetTokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating reset token: %w", err)
	}
	return hex.EncodeToString(buf) + fmt.Sprintf("%d", userID), nil
}

// HashToken returns the hex SHA-256 digest of a raw token.
func HashToken(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}

// Upsert stores a token hash for a user, replacing any existing token
// in a single statement.
func (r *PasswordResetRepository) Upsert(ctx context.Context, token *models.PasswordResetToken) error {
	query := `
		INSERT INTO password_reset_tokens (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET token_hash = EXCLUDED.token_hash,
		              expires_at = EXCLUDED.expires_at,
		              created_at = NOW()
		RETURNING created_at
	`

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		token.UserID, token.TokenHash, token.ExpiresAt,
	).Scan(&token.CreatedAt)
	utils.LogDBQuery(query, time.Since(start), err)

	if err != nil {
		return utils.ParseError(err)
	}
	return nil
}

// GetByTokenHash fetches a live token record by its hash. Unknown and
// expired hashes both surface as not found; an expired match is removed
// on the way out.
func (r *PasswordResetRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error) {
	query := `
		SELECT user_id, token_hash, expires_at, created_at
		FROM password_reset_tokens
		WHERE token_hash = $1
	`

	token := &models.PasswordResetToken{}
	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, tokenHash).Scan(
		&token.UserID, &token.TokenHash, &token.ExpiresAt, &token.CreatedAt,
	)
	utils.LogDBQuery(query, time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundMessageError(constants.MsgResetTokenInvalid)
		}
		return nil, utils.ParseError(err)
	}

	if token.IsExpired() {
		if delErr := r.DeleteByUserID(ctx, token.UserID); delErr != nil {
			return nil, delErr
		}
		return nil, utils.NewNotFoundMessageError(constants.MsgResetTokenInvalid)
	}

	return token, nil
}

// DeleteByUserID removes a user's reset token, if any.
func (r *PasswordResetRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	query := `DELETE FROM password_reset_tokens WHERE user_id = $1`

	start := time.Now()
	_, err := r.db.ExecContext(ctx, query, userID)
	utils.LogDBQuery(query, time.Since(start), err)

	if err != nil {
		return utils.ParseError(err)
	}
	return nil
}

// DeleteExpired removes all tokens past their expiry and returns how
// many were deleted. The maintenance loop calls this periodically.
func (r *PasswordResetRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM password_reset_tokens WHERE expires_at < NOW()`

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query)
	utils.LogDBQuery(query, time.Since(start), err)

	if err != nil {
		return 0, utils.ParseError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, utils.ParseError(err)
	}
	return rows, nil
}
