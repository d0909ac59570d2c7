// Package models defines the data structures exchanged between the
// storage layer, the services and the API.
//
// The product.go file defines the inventory product model. Products are
// owned by the user who created them and are only visible to their
// owner.
package models

import "time"

// Product represents an inventory item belonging to a user.
type Product struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductCreate is the request body for adding a product.
type ProductCreate struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	SKU         string  `json:"sku" validate:"required,min=1,max=64"`
	Category    string  `json:"category" validate:"required,min=1,max=100"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description" validate:"max=2000"`
	Image       string  `json:"image" validate:"omitempty,url"`
}

// ProductUpdate is the request body for editing a product. Pointer
// fields distinguish omitted fields from explicit overwrites. SKU is
// absent: it identifies the product and cannot be changed.
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	Quantity    *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Image       *string  `json:"image,omitempty" validate:"omitempty,url"`
}

// ApplyTo merges the provided fields into p. Nil fields leave the
// stored value untouched.
func (u *ProductUpdate) ApplyTo(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Quantity != nil {
		p.Quantity = *u.Quantity
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
}

// IsEmpty reports whether the update carries no fields at all.
func (u *ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Category == nil && u.Quantity == nil &&
		u.Price == nil && u.Description == nil && u.Image == nil
}
