// Package constants provides shared constant values used throughout the application.
//
// The errorcodes.go file defines constants related to error handling and
// messaging. User-facing messages are written to be informative without
// revealing implementation details that could aid an attacker.
package constants

// User-Facing Error Messages define standardized messages that can be safely
// presented to API clients.
const (
	// MsgAuthRequired indicates that the user must authenticate to access the resource.
	MsgAuthRequired = "Authentication required"

	// MsgInvalidCredentials indicates that login credentials are incorrect.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgUserNotFound indicates that no account matches the supplied identifier.
	MsgUserNotFound = "User not found, please sign up"

	// MsgEmailRegistered indicates a registration attempt with a taken email.
	MsgEmailRegistered = "Email has already been registered"

	// MsgSKURegistered indicates a product create with a SKU the user
	// already uses.
	MsgSKURegistered = "A product with this SKU already exists"

	// MsgDuplicateResource covers unique violations on any other constraint.
	MsgDuplicateResource = "A record with these values already exists"

	// MsgTokenExpired indicates that the user's session token has expired.
	MsgTokenExpired = "Session has expired, please log in again"

	// MsgInvalidToken indicates that the provided token is invalid.
	MsgInvalidToken = "Invalid token"

	// MsgResetTokenInvalid covers both unknown and expired reset tokens.
	MsgResetTokenInvalid = "Invalid or expired reset token"

	// MsgOldPasswordIncorrect indicates a failed change-password attempt.
	MsgOldPasswordIncorrect = "Old password is incorrect"

	// MsgEmailNotSent indicates that transactional email delivery failed.
	MsgEmailNotSent = "Email not sent, please try again"

	// MsgResetEmailSent confirms that a password reset email was dispatched.
	MsgResetEmailSent = "Reset email sent"

	// MsgPasswordReset confirms a completed password reset.
	MsgPasswordReset = "Password reset successful, please log in"

	// MsgPasswordChanged confirms a completed password change.
	MsgPasswordChanged = "Password change successful"

	// MsgLogoutSuccess confirms successful logout.
	MsgLogoutSuccess = "Successfully logged out"

	// MsgContactSent confirms that a contact-form message was relayed.
	MsgContactSent = "Message sent, we will be in touch shortly"

	// MsgInternalServerError provides a generic server error message.
	MsgInternalServerError = "An internal server error occurred"

	// MsgResourceNotFound indicates that the requested resource does not exist.
	MsgResourceNotFound = "The requested resource could not be found"

	// MsgMethodNotAllowed indicates that the HTTP method is not supported.
	MsgMethodNotAllowed = "This method is not allowed for this resource"

	// MsgAccessDenied indicates that the user lacks permission for the action.
	MsgAccessDenied = "You don't have permission to access this resource"

	// MsgTooManyRequests indicates that the client hit a rate limit.
	MsgTooManyRequests = "Too many requests, please slow down"

	// MsgRequestBodyTooLarge indicates that the request payload exceeds size limits.
	MsgRequestBodyTooLarge = "Request body too large"

	// MsgEmptyRequestBody indicates that a request body was expected but missing.
	MsgEmptyRequestBody = "Request body must not be empty"

	// MsgMalformedJSON indicates that the request body contains invalid JSON.
	MsgMalformedJSON = "Request body contains malformed JSON"
)

// Database Error Codes for recognizing PostgreSQL constraint violations.
const (
	// PGErrorDuplicateConstraint is the PostgreSQL error code for unique constraint violations.
	PGErrorDuplicateConstraint = "23505"

	// PGErrorForeignKeyConstraint is the PostgreSQL error code for foreign key violations.
	PGErrorForeignKeyConstraint = "23503"

	// PGErrorNotNullConstraint is the PostgreSQL error code for not-null constraint violations.
	PGErrorNotNullConstraint = "23502"
)

// Logger Constants define values used for structured logging.
const (
	// LogCategoryAuth is the log category for authentication-related events.
	LogCategoryAuth = "auth"

	// LogEventLogin is the log event type for user login.
	LogEventLogin = "login"

	// LogEventRegister is the log event type for user registration.
	LogEventRegister = "register"

	// LogEventPasswordReset is the log event type for password reset operations.
	LogEventPasswordReset = "password_reset"

	// LogRedactedValue is used to replace sensitive values in logs.
	LogRedactedValue = "[REDACTED]"
)
