// Package utils provides shared helpers used across the application.
//
// The response.go file implements the JSON response envelope. Every
// endpoint responds with the same structure so clients can handle
// success and failure uniformly.
package utils

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gsvlabs/storefront-backend/internal/constants"
)

// Response is the standard envelope for all API responses.
type Response struct {
	// Success indicates whether the request succeeded.
	Success bool `json:"success"`

	// Data holds the response payload on success.
	Data interface{} `json:"data,omitempty"`

	// Error holds error details on failure.
	Error *ErrorInfo `json:"error,omitempty"`

	// Meta holds pagination or other metadata.
	Meta *MetaInfo `json:"meta,omitempty"`
}

// ErrorInfo holds structured information about an error response.
type ErrorInfo struct {
	// Code is a machine-readable error code.
	Code string `json:"code"`

	// Message is a human-readable error description.
	Message string `json:"message"`

	// Details holds field-level validation errors or other context.
	Details interface{} `json:"details,omitempty"`
}

// MetaInfo holds metadata about a paginated response.
type MetaInfo struct {
	// Page is the current page number.
	Page int `json:"page"`

	// PageSize is the number of items per page.
	PageSize int `json:"page_size"`

	// TotalItems is the total number of items across all pages.
	TotalItems int `json:"total_items"`

	// TotalPages is the total number of pages.
	TotalPages int `json:"total_pages"`

	// Timestamp is when the response was generated.
	Timestamp string `json:"timestamp"`
}

// JSON writes a success response with the given status code and data.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	resp := Response{
		Success: true,
		Data:    data,
	}
	writeJSON(w, status, resp)
}

// Error writes an error response with the given status code, error code
// and message.
func Error(w http.ResponseWriter, status int, code string, message string, details interface{}) {
	resp := Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	writeJSON(w, status, resp)
}

// ErrorFromAppError writes an error response based on an AppError.
func ErrorFromAppError(w http.ResponseWriter, appErr *AppError) {
	Error(w, appErr.StatusCode, appErr.Code, appErr.Message, nil)
}

// Paginated writes a success response with pagination metadata.
func Paginated(w http.ResponseWriter, status int, data interface{}, page, pageSize, totalItems int) {
	// Callers clamp query parameters, but a zero pageSize must never
	// reach the division below.
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		totalPages++
	}

	resp := Response{
		Success: true,
		Data:    data,
		Meta: &MetaInfo{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: totalItems,
			TotalPages: totalPages,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		},
	}
	writeJSON(w, status, resp)
}

// NoContent writes a 204 No Content response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// BadRequest writes a 400 Bad Request error response.
func BadRequest(w http.ResponseWriter, message string, details interface{}) {
	Error(w, http.StatusBadRequest, constants.CodeBadRequest, message, details)
}

// ValidationError writes a 400 response with field-level details.
func ValidationError(w http.ResponseWriter, details interface{}) {
	Error(w, http.StatusBadRequest, constants.CodeValidationError, "Validation failed", details)
}

// Unauthorized writes a 401 Unauthorized error response.
func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgAuthRequired
	}
	Error(w, http.StatusUnauthorized, constants.CodeUnauthorized, message, nil)
}

// Forbidden writes a 403 Forbidden error response.
func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgAccessDenied
	}
	Error(w, http.StatusForbidden, constants.CodeForbidden, message, nil)
}

// NotFound writes a 404 Not Found error response.
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgResourceNotFound
	}
	Error(w, http.StatusNotFound, constants.CodeNotFound, message, nil)
}

// MethodNotAllowed writes a 405 Method Not Allowed error response.
func MethodNotAllowed(w http.ResponseWriter, allowedMethods []string) {
	if len(allowedMethods) > 0 {
		w.Header().Set("Allow", strings.Join(allowedMethods, ", "))
	}
	Error(w, http.StatusMethodNotAllowed, constants.CodeMethodNotAllowed, constants.MsgMethodNotAllowed, nil)
}

// TooManyRequests writes a 429 Too Many Requests error response.
func TooManyRequests(w http.ResponseWriter, retryAfterSeconds int) {
	if retryAfterSeconds > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
	}
	Error(w, http.StatusTooManyRequests, constants.CodeRateLimited, constants.MsgTooManyRequests, nil)
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgInternalServerError
	}
	Error(w, http.StatusInternalServerError, constants.CodeInternalError, message, nil)
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
