// Package models defines the data structures exchanged between the
// storage layer, the services and the API.
//
// The user.go file defines the user account model and the request
// shapes for registration, login and profile management.
package models

import (
	"time"

	"github.com/gsvlabs/storefront-backend/internal/constants"
)

// User represents a registered account. PasswordHash and Salt never
// leave the server; Sanitize strips them before a user is serialized.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	Image        string    `json:"image"`
	Mobile       string    `json:"mobile"`
	Bio          string    `json:"bio"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitize returns a copy of the user with credential material cleared.
// Handlers serialize the sanitized copy, never the original.
func (u *User) Sanitize() *User {
	clean := *u
	clean.PasswordHash = ""
	clean.Salt = ""
	return &clean
}

// AuthSession is the register and login response payload: the profile
// fields flattened alongside the issued session token. The same token
// also travels in the session cookie; the body copy serves clients
// that cannot read cross-site cookies.
type AuthSession struct {
	User
	Token string `json:"token"`
}

// ApplyProfileDefaults fills the optional profile fields of a freshly
// registered account.
func (u *User) ApplyProfileDefaults() {
	if u.Image == "" {
		u.Image = constants.DefaultProfileImage
	}
	if u.Mobile == "" {
		u.Mobile = constants.DefaultProfileMobile
	}
	if u.Bio == "" {
		u.Bio = constants.DefaultProfileBio
	}
}

// UserRegistration is the request body for creating an account.
type UserRegistration struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// UserCredentials is the request body for logging in.
type UserCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserProfileUpdate is the request body for updating profile fields.
// Pointer fields distinguish "not provided" (nil, keep the stored
// value) from "provided" (overwrite, even with an empty string). Email
// is deliberately absent: addresses cannot be changed through this
// endpoint.
type UserProfileUpdate struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Image  *string `json:"image,omitempty" validate:"omitempty,url"`
	Mobile *string `json:"mobile,omitempty" validate:"omitempty,max=20"`
	Bio    *string `json:"bio,omitempty" validate:"omitempty,max=200"`
}

// ApplyTo merges the provided fields into u. Nil fields leave the
// stored value untouched.
func (p *UserProfileUpdate) ApplyTo(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Image != nil {
		u.Image = *p.Image
	}
	if p.Mobile != nil {
		u.Mobile = *p.Mobile
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
}

// IsEmpty reports whether the update carries no fields at all.
func (p *UserProfileUpdate) IsEmpty() bool {
	return p.Name == nil && p.Image == nil && p.Mobile == nil && p.Bio == nil
}

// ChangePasswordRequest is the request body for changing the password
// of a logged-in user.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"password" validate:"required,min=8,max=128"`
}

// LoginStatus is the response body of the session status endpoint.
type LoginStatus struct {
	LoggedIn bool `json:"logged_in"`
}
