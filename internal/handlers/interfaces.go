// Package handlers implements the HTTP endpoints of the API. Handlers
// decode and validate requests, call into the service layer and write
// the standard response envelope.
//
// The interfaces.go file declares the service surfaces the handlers
// depend on, so tests can substitute fakes.
package handlers

import (
	"context"

	"github.com/gsvlabs/storefront-backend/internal/models"
)

// AuthenticationService creates accounts and verifies credentials.
type AuthenticationService interface {
	Register(ctx context.Context, reg *models.UserRegistration) (*models.User, string, error)
	Login(ctx context.Context, creds *models.UserCredentials) (*models.User, string, error)
}

// UserManager operates on the authenticated user's account.
type UserManager interface {
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update *models.UserProfileUpdate) (*models.User, error)
	ChangePassword(ctx context.Context, userID int64, req *models.ChangePasswordRequest) error
}

// PasswordResetter implements the forgot/reset password flow.
type PasswordResetter interface {
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, rawToken, newPassword string) error
}

// ProductManager operates on the authenticated user's inventory.
type ProductManager interface {
	Create(ctx context.Context, userID int64, req *models.ProductCreate) (*models.Product, error)
	Get(ctx context.Context, userID, productID int64) (*models.Product, error)
	List(ctx context.Context, userID int64, page, pageSize int) ([]*models.Product, int, error)
	Update(ctx context.Context, userID, productID int64, update *models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, userID, productID int64) error
}

// ContactMailer relays contact-form submissions.
type ContactMailer interface {
	SendContactEmail(user *models.User, req *models.ContactRequest) error
}
