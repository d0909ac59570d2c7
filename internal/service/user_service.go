// Package service implements the application's business logic.
//
// The user_service.go file handles profile reads, profile updates and
// password changes for authenticated users.
package service

import (
	"context"

	"github.com/gsvlabs/storefront-backend/internal/auth"
	"github.com/gsvlabs/storefront-backend/internal/models"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// UserService handles operations on the authenticated user's account.
type UserService struct {
	users   UserStore
	hashCfg *auth.PasswordConfig
}

// NewUserService creates a user service.
func NewUserService(users UserStore, hashCfg *auth.PasswordConfig) *UserService {
	return &UserService{users: users, hashCfg: hashCfg}
}

// GetByID fetches a user account.
func (s *UserService) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile merges the provided fields into the stored profile and
// persists the result. Fields absent from the update keep their stored
// values; fields present overwrite, even with an empty string.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, update *models.UserProfileUpdate) (*models.User, error) {
	if update.IsEmpty() {
		return nil, utils.NewValidationError("No profile fields provided")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	update.ApplyTo(user)

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces the password of a logged-in user after
// verifying the old one.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, req *models.ChangePasswordRequest) error {
	if err := utils.ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	ok, err := auth.VerifyPassword(req.OldPassword, user.PasswordHash, user.Salt, s.hashCfg)
	if err != nil {
		return utils.NewInternalServerError(err)
	}
	if !ok {
		return utils.NewValidationError("Old password is incorrect")
	}

	hash, salt, err := auth.HashPassword(req.NewPassword, s.hashCfg)
	if err != nil {
		return utils.NewInternalServerError(err)
	}

	return s.users.UpdatePassword(ctx, userID, hash, salt)
}
