// Package constants provides shared constant values used throughout the application.
//
// The httpcodes.go file defines HTTP status codes and response codes used by the
// API. Mirroring net/http values behind named constants keeps handler code and
// tests consistent about which codes the API surface actually uses.
package constants

import "net/http"

// HTTP Status Codes used by the API surface.
const (
	StatusOK                  = http.StatusOK
	StatusCreated             = http.StatusCreated
	StatusNoContent           = http.StatusNoContent
	StatusBadRequest          = http.StatusBadRequest
	StatusUnauthorized        = http.StatusUnauthorized
	StatusForbidden           = http.StatusForbidden
	StatusNotFound            = http.StatusNotFound
	StatusMethodNotAllowed    = http.StatusMethodNotAllowed
	StatusConflict            = http.StatusConflict
	StatusTooManyRequests     = http.StatusTooManyRequests
	StatusInternalServerError = http.StatusInternalServerError
	StatusServiceUnavailable  = http.StatusServiceUnavailable
)

// Machine-readable error codes included in error response bodies.
const (
	CodeBadRequest           = "bad_request"
	CodeUnauthorized         = "unauthorized"
	CodeForbidden            = "forbidden"
	CodeNotFound             = "not_found"
	CodeMethodNotAllowed     = "method_not_allowed"
	CodeConflict             = "conflict"
	CodeValidationError      = "validation_error"
	CodeDuplicateResource    = "duplicate_resource"
	CodeInvalidCredentials   = "invalid_credentials"
	CodeTokenExpired         = "token_expired"
	CodeTokenInvalid         = "token_invalid"
	CodeEmailDeliveryFailed  = "email_delivery_failed"
	CodeRateLimited          = "rate_limited"
	CodeAuthenticationFailed = "authentication_failed"
	CodeInternalError        = "internal_error"
)

// Response envelope success flags.
const (
	ResponseSuccess = true
	ResponseFailure = false
)

// Common header names.
const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderCacheControl  = "Cache-Control"
)

// Common header values.
const (
	ContentTypeJSON     = "application/json"
	CacheControlNoStore = "no-store"
)
