// Package utils provides shared helpers used across the application,
// including the error taxonomy, the response envelope and request
// validation.
//
// The errors.go file defines a structured application error type and a
// set of constructors for the error kinds the API distinguishes. Raw
// errors from the database and other infrastructure are translated into
// these kinds before they reach a handler.
package utils

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lib/pq"

	"github.com/gsvlabs/storefront-backend/internal/constants"
)

// Standard application errors that can be checked with errors.Is.
var (
	// ErrNotFound indicates that a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicate indicates a uniqueness conflict, such as a taken email.
	ErrDuplicate = errors.New("resource already exists")

	// ErrInvalidInput indicates that the request data failed validation.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized indicates a missing or invalid session.
	ErrUnauthorized = errors.New("unauthorized access")

	// ErrForbidden indicates that the caller lacks permission.
	ErrForbidden = errors.New("forbidden access")

	// ErrExpiredToken indicates that a token has passed its expiry.
	ErrExpiredToken = errors.New("token expired")

	// ErrInvalidToken indicates a malformed or tampered token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrEmailDelivery indicates that a transactional email could not be sent.
	ErrEmailDelivery = errors.New("email delivery failed")

	// ErrInternal indicates an unexpected server-side failure.
	ErrInternal = errors.New("internal server error")
)

// AppError represents a structured application error with an HTTP status,
// a machine-readable code and a safe user-facing message.
type AppError struct {
	// Err is the underlying error, if any.
	Err error

	// Message is a user-friendly error message safe to return to clients.
	Message string

	// Code is a machine-readable error code.
	Code string

	// StatusCode is the HTTP status the error maps to.
	StatusCode int
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates an error for a missing resource.
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Err:        ErrNotFound,
		Message:    fmt.Sprintf("%s with ID %v not found", resource, id),
		Code:       constants.CodeNotFound,
		StatusCode: http.StatusNotFound,
	}
}

// NewNotFoundMessageError creates a not-found error with a custom message,
// used where exposing an ID would be meaningless (e.g. email lookups).
func NewNotFoundMessageError(message string) *AppError {
	return &AppError{
		Err:        ErrNotFound,
		Message:    message,
		Code:       constants.CodeNotFound,
		StatusCode: http.StatusNotFound,
	}
}

// NewDuplicateError creates an error for a uniqueness conflict.
func NewDuplicateError(resource, field string, value interface{}) *AppError {
	return &AppError{
		Err:        ErrDuplicate,
		Message:    fmt.Sprintf("%s with %s '%v' already exists", resource, field, value),
		Code:       constants.CodeDuplicateResource,
		StatusCode: http.StatusConflict,
	}
}

// NewValidationError creates an error for invalid request data.
func NewValidationError(message string) *AppError {
	return &AppError{
		Err:        ErrInvalidInput,
		Message:    message,
		Code:       constants.CodeValidationError,
		StatusCode: http.StatusBadRequest,
	}
}

// NewBadRequestError creates a generic bad request error.
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Err:        ErrInvalidInput,
		Message:    message,
		Code:       constants.CodeBadRequest,
		StatusCode: http.StatusBadRequest,
	}
}

// NewInvalidCredentialsError creates an error for a failed login.
func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Err:        ErrInvalidCredentials,
		Message:    constants.MsgInvalidCredentials,
		Code:       constants.CodeInvalidCredentials,
		StatusCode: http.StatusBadRequest,
	}
}

// NewUnauthorizedError creates an error for a missing or invalid session.
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = constants.MsgAuthRequired
	}
	return &AppError{
		Err:        ErrUnauthorized,
		Message:    message,
		Code:       constants.CodeUnauthorized,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewForbiddenError creates an error for insufficient permissions.
func NewForbiddenError(message string) *AppError {
	if message == "" {
		message = constants.MsgAccessDenied
	}
	return &AppError{
		Err:        ErrForbidden,
		Message:    message,
		Code:       constants.CodeForbidden,
		StatusCode: http.StatusForbidden,
	}
}

// NewExpiredTokenError creates an error for an expired token.
func NewExpiredTokenError() *AppError {
	return &AppError{
		Err:        ErrExpiredToken,
		Message:    constants.MsgTokenExpired,
		Code:       constants.CodeTokenExpired,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewInvalidTokenError creates an error for a malformed or tampered token.
func NewInvalidTokenError() *AppError {
	return &AppError{
		Err:        ErrInvalidToken,
		Message:    constants.MsgInvalidToken,
		Code:       constants.CodeTokenInvalid,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewEmailDeliveryError creates an error for failed email dispatch.
func NewEmailDeliveryError(err error) *AppError {
	return &AppError{
		Err:        fmt.Errorf("%w: %v", ErrEmailDelivery, err),
		Message:    constants.MsgEmailNotSent,
		Code:       constants.CodeEmailDeliveryFailed,
		StatusCode: http.StatusInternalServerError,
	}
}

// NewInternalServerError creates an error for an unexpected failure.
func NewInternalServerError(err error) *AppError {
	return &AppError{
		Err:        err,
		Message:    constants.MsgInternalServerError,
		Code:       constants.CodeInternalError,
		StatusCode: http.StatusInternalServerError,
	}
}

// IsNotFoundError checks if an error indicates a missing resource.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if an error indicates a uniqueness conflict.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsValidationError checks if an error indicates invalid input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// ParseError translates raw infrastructure errors into application errors.
// Database driver errors and sentinel errors are mapped to the matching
// AppError kind; anything unrecognized becomes an internal server error.
func ParseError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, sql.ErrNoRows) {
		return &AppError{
			Err:        ErrNotFound,
			Message:    constants.MsgResourceNotFound,
			Code:       constants.CodeNotFound,
			StatusCode: http.StatusNotFound,
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constants.PGErrorDuplicateConstraint:
			return &AppError{
				Err:        ErrDuplicate,
				Message:    duplicateMessage(pqErr.Constraint),
				Code:       constants.CodeDuplicateResource,
				StatusCode: http.StatusConflict,
			}
		case constants.PGErrorForeignKeyConstraint, constants.PGErrorNotNullConstraint:
			return NewValidationError("invalid reference in request data")
		}
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewInvalidCredentialsError()
	case errors.Is(err, ErrExpiredToken):
		return NewExpiredTokenError()
	case errors.Is(err, ErrInvalidToken):
		return NewInvalidTokenError()
	case errors.Is(err, ErrUnauthorized):
		return NewUnauthorizedError("")
	case errors.Is(err, ErrForbidden):
		return NewForbiddenError("")
	case errors.Is(err, ErrNotFound):
		return &AppError{
			Err:        err,
			Message:    constants.MsgResourceNotFound,
			Code:       constants.CodeNotFound,
			StatusCode: http.StatusNotFound,
		}
	case errors.Is(err, ErrInvalidInput):
		return NewValidationError(err.Error())
	case errors.Is(err, ErrEmailDelivery):
		return &AppError{
			Err:        err,
			Message:    constants.MsgEmailNotSent,
			Code:       constants.CodeEmailDeliveryFailed,
			StatusCode: http.StatusInternalServerError,
		}
	}

	return NewInternalServerError(err)
}

// duplicateMessage picks the user-facing message for a unique violation
// from the constraint that raised it, so a duplicate product SKU is not
// reported as a taken email address.
func duplicateMessage(constraint string) string {
	switch {
	case strings.Contains(constraint, "email"):
		return constants.MsgEmailRegistered
	case strings.Contains(constraint, "sku"):
		return constants.MsgSKURegistered
	default:
		return constants.MsgDuplicateResource
	}
}
