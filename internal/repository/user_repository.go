// Package repository implements data access for the application's
// models on top of PostgreSQL. Each repository logs its queries with
// timing and translates driver errors into application errors.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gsvlabs/storefront-backend/internal/database"
	"github.com/gsvlabs/storefront-backend/internal/models"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// UserRepository provides access to user accounts.
type UserRepository struct {
	db *database.Pool
}

// NewUserRepository creates a user repository backed by the pool.
func NewUserRepository(db *database.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and fills in its generated ID and
// timestamps. A duplicate email surfaces as a conflict error.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, salt, image, mobile, bio)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Salt,
		user.Image, user.Mobile, user.Bio,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	utils.LogDBQuery(query, time.Since(start), err)

	if err != nil {
		return utils.ParseError(err)
	}
	return nil
}

// GetByID fetches a user by primary key.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, salt, image, mobile, bio, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	user := &models.User{}
	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Salt,
		&user.Image, &user.Mobile, &user.Bio, &user.CreatedAt, &user.UpdatedAt,
	)
	utils.LogDBQuery(query, time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("User", id)
		}
		return nil, utils.ParseError(err)
	}
	return user, nil
}

// GetByEmail fetches a user by email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, salt, image, mobile, bio, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	user := &models.User{}
	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Salt,
		&user.Image, &user.Mobile, &user.Bio, &user.CreatedAt, &user.UpdatedAt,
	)
	utils.LogDBQuery(query, time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundMessageError("User not found, please sign up")
		}
		return nil, utils.ParseError(err)
	}
	return user, nil
}

// ExistsByEmail reports whether any account uses the given email.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	utils.LogDBQuery(query, time.Since(start), err)

	if err != nil {
		return false, utils.ParseError(err)
	}
	return exists, nil
}

// UpdateProfile persists the mutable profile fields of a user.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, image = $2, mobile = $3, bio = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Image, user.Mobile, user.Bio, user.ID,
	).Scan(&user.UpdatedAt)
	utils.LogDBQuery(query, time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.NewNotFoundError("User", user.ID)
		}
		return utils.ParseError(err)
	}
	return nil
}

// UpdatePassword replaces a user's password hash and salt.
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, hash, salt string) error {
	query := `
		UPDATE users
		SET password_hash = $1, salt = $2, updated_at = NOW()
		WHERE id = $3
	`

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, hash, salt, userID)
	utils.LogDBQuery(query, time.Since(start), err)

	if err != nil {
		return utils.ParseError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return utils.ParseError(err)
	}
	if rows == 0 {
		return utils.NewNotFoundError("User", userID)
	}
	return nil
}
