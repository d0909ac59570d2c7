// Package service implements the application's business logic.
//
// The stores.go file declares the storage interfaces the services
// depend on. The repository package provides the PostgreSQL
// implementations; tests provide fakes.
package service

import (
	"context"

	"github.com/gsvlabs/storefront-backend/internal/models"
)

// UserStore is the storage surface for user accounts.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID int64, hash, salt string) error
}

// ResetTokenStore is the storage surface for password reset tokens.
type ResetTokenStore interface {
	Upsert(ctx context.Context, token *models.PasswordResetToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error)
	DeleteByUserID(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// ProductStore is the storage surface for inventory products.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, userID, productID int64) (*models.Product, error)
	List(ctx context.Context, userID int64, page, pageSize int) ([]*models.Product, int, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, userID, productID int64) error
}
