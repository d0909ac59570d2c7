package service

import (
	"context"
	"sort"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/gsvlabs/storefront-backend/internal/models"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
	err    error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*models.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return utils.NewDuplicateError("User", "email", user.Email)
		}
	}
	user.ID = f.nextID
	f.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, utils.NewNotFoundError("User", id)
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, utils.NewNotFoundMessageError("User not found, please sign up")
}

func (f *fakeUserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	stored, ok := f.users[user.ID]
	if !ok {
		return utils.NewNotFoundError("User", user.ID)
	}
	stored.Name = user.Name
	stored.Image = user.Image
	stored.Mobile = user.Mobile
	stored.Bio = user.Bio
	stored.UpdatedAt = time.Now()
	return nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, userID int64, hash, salt string) error {
	if f.err != nil {
		return f.err
	}
	stored, ok := f.users[userID]
	if !ok {
		return utils.NewNotFoundError("User", userID)
	}
	stored.PasswordHash = hash
	stored.Salt = salt
	return nil
}

// fakeResetTokenStore is an in-memory ResetTokenStore, one token per
// user like the real table.
type fakeResetTokenStore struct {
	tokens map[int64]*models.PasswordResetToken
	err    error
}

func newFakeResetTokenStore() *fakeResetTokenStore {
	return &fakeResetTokenStore{tokens: map[int64]*models.PasswordResetToken{}}
}

func (f *fakeResetTokenStore) Upsert(_ context.Context, token *models.PasswordResetToken) error {
	if f.err != nil {
		return f.err
	}
	token.CreatedAt = time.Now()
	stored := *token
	f.tokens[token.UserID] = &stored
	return nil
}

func (f *fakeResetTokenStore) GetByTokenHash(_ context.Context, tokenHash string) (*models.PasswordResetToken, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.tokens {
		if t.TokenHash == tokenHash {
			if t.IsExpired() {
				delete(f.tokens, t.UserID)
				break
			}
			copied := *t
			return &copied, nil
		}
	}
	return nil, utils.NewNotFoundMessageError("Invalid or expired reset token")
}

func (f *fakeResetTokenStore) DeleteByUserID(_ context.Context, userID int64) error {
	if f.err != nil {
		return f.err
	}
	delete(f.tokens, userID)
	return nil
}

func (f *fakeResetTokenStore) DeleteExpired(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var deleted int64
	for id, t := range f.tokens {
		if t.IsExpired() {
			delete(f.tokens, id)
			deleted++
		}
	}
	return deleted, nil
}

// fakeProductStore is an in-memory ProductStore.
type fakeProductStore struct {
	products map[int64]*models.Product
	nextID   int64
	err      error
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[int64]*models.Product{}, nextID: 1}
}

func (f *fakeProductStore) Create(_ context.Context, product *models.Product) error {
	if f.err != nil {
		return f.err
	}
	for _, p := range f.products {
		if p.UserID == product.UserID && p.SKU == product.SKU {
			return utils.NewDuplicateError("Product", "sku", product.SKU)
		}
	}
	product.ID = f.nextID
	f.nextID++
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	stored := *product
	f.products[product.ID] = &stored
	return nil
}

func (f *fakeProductStore) GetByID(_ context.Context, userID, productID int64) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[productID]
	if !ok || p.UserID != userID {
		return nil, utils.NewNotFoundError("Product", productID)
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProductStore) List(_ context.Context, userID int64, page, pageSize int) ([]*models.Product, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	owned := []*models.Product{}
	for _, p := range f.products {
		if p.UserID == userID {
			copied := *p
			owned = append(owned, &copied)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID > owned[j].ID })

	total := len(owned)
	start := (page - 1) * pageSize
	if start >= total {
		return []*models.Product{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return owned[start:end], total, nil
}

func (f *fakeProductStore) Update(_ context.Context, product *models.Product) error {
	if f.err != nil {
		return f.err
	}
	stored, ok := f.products[product.ID]
	if !ok || stored.UserID != product.UserID {
		return utils.NewNotFoundError("Product", product.ID)
	}
	copied := *product
	copied.UpdatedAt = time.Now()
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductStore) Delete(_ context.Context, userID, productID int64) error {
	if f.err != nil {
		return f.err
	}
	stored, ok := f.products[productID]
	if !ok || stored.UserID != userID {
		return utils.NewNotFoundError("Product", productID)
	}
	delete(f.products, productID)
	return nil
}

// fakeResetMailer records sent reset emails.
type fakeResetMailer struct {
	sent []sentResetEmail
	err  error
}

type sentResetEmail struct {
	to       string
	name     string
	rawToken string
}

func (f *fakeResetMailer) SendPasswordResetEmail(toEmail, name, rawToken string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentResetEmail{to: toEmail, name: name, rawToken: rawToken})
	return nil
}

// fakeMessageSender records composed gomail messages.
type fakeMessageSender struct {
	messages []*gomail.Message
	err      error
}

func (f *fakeMessageSender) Send(m *gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, m)
	return nil
}
