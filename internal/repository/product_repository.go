// Package repository implements data access for the application's
// models on top of PostgreSQL.
//
// The product_repository.go file stores inventory products. Every
// lookup is scoped to the owning user so one account can never see
// another's inventory.
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

// ProductRepository provides access to inventory products.
type ProductRepository struct {
	db *database.Pool
}

// NewProductRepository creates a product repository backed by the pool.
func NewProductRepository(db *database.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a product for a user and fills in its generated ID and
// timestamps. A duplicate SKU for the same user surfaces as a conflict.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (user_id, name, sku, category, quantity, price, description, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		product.UserID, product.Name, product.SKU, product.Category,
		product.Quantity, product.Price, product.Description, product.Image,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	utils.LogDBQuery(query, time.Since(start), err)

	if err != nil {
		return utils.ParseError(err)
	}
	return nil
}

// GetByID fetches a product by ID, scoped to its owner.
func (r *ProductRepository) GetByID(ctx context.Context, userID, productID int64) (*models.Product, error) {
	query := `
		SELECT id, user_id, name, sku, category, quantity, price, description, image, created_at, updated_at
		FROM products
		WHERE id = $1 AND user_id = $2
	`

	product := &models.Product{}
	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, productID, userID).Scan(
		&product.ID, &product.UserID, &product.Name, &product.SKU, &product.Category,
		&product.Quantity, &product.Price, &product.Description, &product.Image,
		&product.CreatedAt, &product.UpdatedAt,
	)
	utils.LogDBQuery(query, time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("Product", productID)
		}
		return nil, utils.ParseError(err)
	}
	return product, nil
}

// List returns a page of the user's products, newest first, along with
// the total count for pagination metadata.
func (r *ProductRepository) List(ctx context.Context, userID int64, page, pageSize int) ([]*models.Product, int, error) {
	countQuery := `SELECT COUNT(*) FROM products WHERE user_id = $1`

	var total int
	start := time.Now()
	err := r.db.QueryRowContext(ctx, countQuery, userID).Scan(&total)
	utils.LogDBQuery(countQuery, time.Since(start), err)
	if err != nil {
		return nil, 0, utils.ParseError(err)
	}

	query := `
		SELECT id, user_id, name, sku, category, quantity, price, description, image, created_at, updated_at
		FROM products
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	offset := (page - 1) * pageSize
	start = time.Now()
	rows, err := r.db.QueryContext(ctx, query, userID, pageSize, offset)
	utils.LogDBQuery(query, time.Since(start), err)
	if err != nil {
		return nil, 0, utils.ParseError(err)
	}
	defer rows.Close()

	products := make([]*models.Product, 0, pageSize)
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(
			&product.ID, &product.UserID, &product.Name, &product.SKU, &product.Category,
			&product.Quantity, &product.Price, &product.Description, &product.Image,
			&product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			return nil, 0, utils.ParseError(err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, utils.ParseError(err)
	}

	return products, total, nil
}

// Update persists the mutable fields of a product, scoped to its owner.
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET name = $1, category = $2, quantity = $3, price = $4, description = $5, image = $6, updated_at = NOW()
		WHERE id = $7 AND user_id = $8
		RETURNING updated_at
	`

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		product.Name, product.Category, product.Quantity, product.Price,
		product.Description, product.Image, product.ID, product.UserID,
	).Scan(&product.UpdatedAt)
	utils.LogDBQuery(query, time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.NewNotFoundError("Product", product.ID)
		}
		return utils.ParseError(err)
	}
	return nil
}

// Delete removes a product, scoped to its owner.
func (r *ProductRepository) Delete(ctx context.Context, userID, productID int64) error {
	query := `DELETE FROM products WHERE id = $1 AND user_id = $2`

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, productID, userID)
	utils.LogDBQuery(query, time.Since(start), err)

	if err != nil {
		return utils.ParseError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return utils.ParseError(err)
	}
	if rows == 0 {
		return utils.NewNotFoundError("Product", productID)
	}
	return nil
}
