// Package constants provides shared constant values used throughout the application.
//
// The securityparams.go file defines parameters for password hashing,
// session cookies and reset token generation.
package constants

// Session Cookie Parameters
const (
	// SessionCookieName is the name of the cookie carrying the session token.
	SessionCookieName = "token"

	// SessionCookiePath is the path scope of the session cookie.
	SessionCookiePath = "/"
)

// Password Policy
const (
	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 8

	// MaxPasswordLength caps password length to bound hashing cost.
	MaxPasswordLength = 128
)

// Argon2id Hashing Parameters
const (
	// DefaultHashMemory is the Argon2id memory parameter in KiB.
	DefaultHashMemory = 64 * 1024

	// DefaultHashIterations is the Argon2id time parameter.
	DefaultHashIterations = 3

	// DefaultHashParallelism is the Argon2id parallelism parameter.
	DefaultHashParallelism = 2

	// DefaultSaltLength is the salt length in bytes.
	DefaultSaltLength = 16

	// DefaultKeyLength is the derived key length in bytes.
	DefaultKeyLength = 32
)

// Reset Token Parameters
const (
	// ResetTokenByteLength is how many random bytes seed a reset token.
	ResetTokenByteLength = 32
)

// JWT Parameters
const (
	// JWTIssuer identifies this service as the token issuer.
	JWTIssuer = "storefront-backend"

	// MinJWTSecretLength is the minimum accepted signing secret length.
	MinJWTSecretLength = 32
)
