// Package service implements the application's business logic.
//
// The product_service.go file handles inventory products. All
// operations are scoped to the calling user; ownership is enforced at
// the query level, so operating on another user's product behaves
// exactly like operating on a missing one.
package service

import (
	"context"

	"github.com/gsvlabs/storefront-backend/internal/constants"
	"github.com/gsvlabs/storefront-backend/internal/models"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// ProductService handles inventory product operations.
type ProductService struct {
	products ProductStore
}

// NewProductService creates a product service.
func NewProductService(products ProductStore) *ProductService {
	return &ProductService{products: products}
}

// Create adds a product to the user's inventory.
func (s *ProductService) Create(ctx context.Context, userID int64, req *models.ProductCreate) (*models.Product, error) {
	product := &models.Product{
		UserID:      userID,
		Name:        req.Name,
		SKU:         req.SKU,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get fetches one of the user's products.
func (s *ProductService) Get(ctx context.Context, userID, productID int64) (*models.Product, error) {
	return s.products.GetByID(ctx, userID, productID)
}

// List returns a page of the user's products with the total count.
// Page parameters are clamped to sane bounds.
func (s *ProductService) List(ctx context.Context, userID int64, page, pageSize int) ([]*models.Product, int, error) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	return s.products.List(ctx, userID, page, pageSize)
}

// Update merges the provided fields into one of the user's products.
func (s *ProductService) Update(ctx context.Context, userID, productID int64, update *models.ProductUpdate) (*models.Product, error) {
	if update.IsEmpty() {
		return nil, utils.NewValidationError("No product fields provided")
	}

	product, err := s.products.GetByID(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	update.ApplyTo(product)

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes one of the user's products.
func (s *ProductService) Delete(ctx context.Context, userID, productID int64) error {
	return s.products.Delete(ctx, userID, productID)
}
