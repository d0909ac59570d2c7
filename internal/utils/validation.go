// Package utils provides shared helpers used across the application.
//
// The validation.go file implements request body decoding and struct
// validation. Decoding is strict: unknown fields are rejected and the
// body size is capped.
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/gsvlabs/storefront-backend/internal/constants"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance. Field names in
// validation errors use the struct's json tags so they match the wire
// format clients see.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidationErrorDetail describes a single failed validation rule.
type ValidationErrorDetail struct {
	// Field is the json name of the failing field.
	Field string `json:"field"`

	// Rule is the validation tag that failed.
	Rule string `json:"rule"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`
}

// DecodeJSON decodes a JSON request body into dst, enforcing a size cap
// and rejecting unknown fields and trailing content.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxRequestBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return NewBadRequestError(constants.MsgMalformedJSON)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return NewBadRequestError(constants.MsgMalformedJSON)
		case errors.As(err, &unmarshalTypeError):
			return NewBadRequestError(fmt.Sprintf("Request body contains an invalid value for the %q field", unmarshalTypeError.Field))
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			field := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return NewBadRequestError(fmt.Sprintf("Request body contains unknown field %s", field))
		case errors.Is(err, io.EOF):
			return NewBadRequestError(constants.MsgEmptyRequestBody)
		case errors.As(err, &maxBytesError):
			return NewBadRequestError(constants.MsgRequestBodyTooLarge)
		default:
			return NewBadRequestError(constants.MsgMalformedJSON)
		}
	}

	if dec.More() {
		return NewBadRequestError("Request body must contain only one JSON object")
	}

	return nil
}

// ValidateStruct runs struct validation on v and returns field-level
// details for each failed rule.
func ValidateStruct(v interface{}) []ValidationErrorDetail {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []ValidationErrorDetail{{Field: "", Rule: "struct", Message: err.Error()}}
	}

	details := make([]ValidationErrorDetail, 0, len(validationErrors))
	for _, fe := range validationErrors {
		details = append(details, ValidationErrorDetail{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: messageForTag(fe),
		})
	}
	return details
}

// DecodeAndValidate decodes the request body into dst and validates it.
// On failure it writes the error response itself and returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := DecodeJSON(w, r, dst); err != nil {
		ErrorFromAppError(w, ParseError(err))
		return false
	}

	if details := ValidateStruct(dst); details != nil {
		ValidationError(w, details)
		return false
	}

	return true
}

// ValidatePassword checks that a password satisfies the length bounds.
// No composition rules: any sufficiently long password is accepted.
func ValidatePassword(password string) error {
	if len(password) < constants.MinPasswordLength {
		return NewValidationError(fmt.Sprintf("Password must be at least %d characters long", constants.MinPasswordLength))
	}
	if len(password) > constants.MaxPasswordLength {
		return NewValidationError(fmt.Sprintf("Password must be at most %d characters long", constants.MaxPasswordLength))
	}
	return nil
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	default:
		return fmt.Sprintf("%s failed validation rule %q", fe.Field(), fe.Tag())
	}
}
