// Package models defines the data structures exchanged between the
// storage layer, the services and the API.
package models

// ContactRequest is the request body of the contact form. The sender's
// identity comes from the authenticated session, not the body.
type ContactRequest struct {
	Subject string `json:"subject" validate:"required,min=1,max=200"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}
