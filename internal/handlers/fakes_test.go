package handlers

import (
	"context"
	"time"

	"github.com/gsvlabs/storefront-backend/internal/auth"
	"github.com/gsvlabs/storefront-backend/internal/models"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// fakeAuthService implements AuthenticationService with canned results.
type fakeAuthService struct {
	user  *models.User
	token string
	err   error
}

func (f *fakeAuthService) Register(_ context.Context, _ *models.UserRegistration) (*models.User, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return f.user, f.token, nil
}

func (f *fakeAuthService) Login(_ context.Context, _ *models.UserCredentials) (*models.User, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return f.user, f.token, nil
}

// fakeUserManager implements UserManager with canned results.
type fakeUserManager struct {
	user       *models.User
	err        error
	lastUpdate *models.UserProfileUpdate
	lastChange *models.ChangePasswordRequest
}

func (f *fakeUserManager) GetByID(_ context.Context, _ int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserManager) UpdateProfile(_ context.Context, _ int64, update *models.UserProfileUpdate) (*models.User, error) {
	f.lastUpdate = update
	if f.err != nil {
		return nil, f.err
	}
	update.ApplyTo(f.user)
	return f.user, nil
}

func (f *fakeUserManager) ChangePassword(_ context.Context, _ int64, req *models.ChangePasswordRequest) error {
	f.lastChange = req
	return f.err
}

// fakeResetter implements PasswordResetter and records calls.
type fakeResetter struct {
	err          error
	forgotEmail  string
	resetToken   string
	resetPass    string
	forgotCalled bool
	resetCalled  bool
}

func (f *fakeResetter) ForgotPassword(_ context.Context, email string) error {
	f.forgotCalled = true
	f.forgotEmail = email
	return f.err
}

func (f *fakeResetter) ResetPassword(_ context.Context, rawToken, newPassword string) error {
	f.resetCalled = true
	f.resetToken = rawToken
	f.resetPass = newPassword
	return f.err
}

// fakeProductManager implements ProductManager with canned results.
type fakeProductManager struct {
	product  *models.Product
	products []*models.Product
	total    int
	err      error

	lastUserID    int64
	lastProductID int64
}

func (f *fakeProductManager) Create(_ context.Context, userID int64, req *models.ProductCreate) (*models.Product, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.product, nil
}

func (f *fakeProductManager) Get(_ context.Context, userID, productID int64) (*models.Product, error) {
	f.lastUserID = userID
	f.lastProductID = productID
	if f.err != nil {
		return nil, f.err
	}
	return f.product, nil
}

func (f *fakeProductManager) List(_ context.Context, userID int64, page, pageSize int) ([]*models.Product, int, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.products, f.total, nil
}

func (f *fakeProductManager) Update(_ context.Context, userID, productID int64, update *models.ProductUpdate) (*models.Product, error) {
	f.lastUserID = userID
	f.lastProductID = productID
	if f.err != nil {
		return nil, f.err
	}
	update.ApplyTo(f.product)
	return f.product, nil
}

func (f *fakeProductManager) Delete(_ context.Context, userID, productID int64) error {
	f.lastUserID = userID
	f.lastProductID = productID
	return f.err
}

// fakeContactMailer implements ContactMailer and records sends.
type fakeContactMailer struct {
	err      error
	lastUser *models.User
	lastReq  *models.ContactRequest
}

func (f *fakeContactMailer) SendContactEmail(user *models.User, req *models.ContactRequest) error {
	f.lastUser = user
	f.lastReq = req
	return f.err
}

// fakeVerifier validates tokens against a fixed table.
type fakeVerifier struct {
	claims map[string]*auth.SessionClaims
}

func (f *fakeVerifier) ValidateToken(tokenString string) (*auth.SessionClaims, error) {
	c, ok := f.claims[tokenString]
	if !ok {
		return nil, utils.ErrInvalidToken
	}
	return c, nil
}

// fakeHealthChecker implements HealthChecker.
type fakeHealthChecker struct {
	err error
}

func (f *fakeHealthChecker) HealthCheck(_ context.Context) error {
	return f.err
}

func testUser() *models.User {
	now := time.Now()
	return &models.User{
		ID:        42,
		Name:      "Jane",
		Email:     "jane@example.com",
		Image:     "https://i.ibb.co/4pDNDk1/avatar.png",
		Mobile:    "+91",
		Bio:       "bio",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func testProduct() *models.Product {
	now := time.Now()
	return &models.Product{
		ID: 7, UserID: 42, Name: "Widget", SKU: "WID-001", Category: "tools",
		Quantity: 5, Price: 9.99, CreatedAt: now, UpdatedAt: now,
	}
}
