// Package service implements the application's business logic.
//
// The auth_service.go file handles registration and login. Both return
// the account together with a freshly issued session token; the handler
// decides how the token travels (an HTTP-only cookie).
package service

import (
	"context"

	"github.com/gsvlabs/storefront-backend/internal/auth"
	"github.com/gsvlabs/storefront-backend/internal/constants"
	"github.com/gsvlabs/storefront-backend/internal/models"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// AuthService handles account creation and credential verification.
type AuthService struct {
	users   UserStore
	jwt     *auth.JWTService
	hashCfg *auth.PasswordConfig
}

// NewAuthService creates an auth service.
func NewAuthService(users UserStore, jwt *auth.JWTService, hashCfg *auth.PasswordConfig) *AuthService {
	return &AuthService{users: users, jwt: jwt, hashCfg: hashCfg}
}

// Register creates a new account and returns it with a session token,
// logging the user in immediately. The email must be unused and the
// password must satisfy the password policy.
func (s *AuthService) Register(ctx context.Context, reg *models.UserRegistration) (*models.User, string, error) {
	if err := utils.ValidatePassword(reg.Password); err != nil {
		return nil, "", err
	}

	exists, err := s.users.ExistsByEmail(ctx, reg.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", utils.NewDuplicateError("User", "email", reg.Email)
	}

	hash, salt, err := auth.HashPassword(reg.Password, s.hashCfg)
	if err != nil {
		return nil, "", utils.NewInternalServerError(err)
	}

	user := &models.User{
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: hash,
		Salt:         salt,
	}
	user.ApplyProfileDefaults()

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", utils.NewInternalServerError(err)
	}

	utils.LogAuth(constants.LogEventRegister, user.ID, user.Email, true)
	return user, token, nil
}

// Login verifies credentials and returns the account with a session
// token. An unknown email surfaces as not found so the client can
// prompt for sign-up; a wrong password surfaces as bad credentials.
func (s *AuthService) Login(ctx context.Context, creds *models.UserCredentials) (*models.User, string, error) {
	user, err := s.users.GetByEmail(ctx, creds.Email)
	if err != nil {
		return nil, "", err
	}

	ok, err := auth.VerifyPassword(creds.Password, user.PasswordHash, user.Salt, s.hashCfg)
	if err != nil {
		return nil, "", utils.NewInternalServerError(err)
	}
	if !ok {
		utils.LogAuth(constants.LogEventLogin, user.ID, user.Email, false)
		return nil, "", utils.NewInvalidCredentialsError()
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", utils.NewInternalServerError(err)
	}

	utils.LogAuth(constants.LogEventLogin, user.ID, user.Email, true)
	return user, token, nil
}
