// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default configuration values, environment
// variable names and request limits used when explicit configuration is
// not supplied.
package constants

// Application Identity
const (
	// AppName is the service name used in logs and email signatures.
	AppName = "storefront-backend"
)

// Environment Names identify the runtime environment of the application.
const (
	// EnvDevelopment is the development environment name.
	EnvDevelopment = "development"

	// EnvTest is the test environment name.
	EnvTest = "test"

	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

// Environment Variable Names for configuration overrides.
const (
	// EnvAppEnv names the variable selecting the runtime environment.
	EnvAppEnv = "APP_ENV"

	// EnvConfigPath names the variable pointing at the YAML config file.
	EnvConfigPath = "CONFIG_PATH"

	// EnvJWTSecret names the variable holding the JWT signing secret.
	EnvJWTSecret = "JWT_SECRET"

	// EnvDatabaseURL names the variable holding a full Postgres connection string.
	EnvDatabaseURL = "DATABASE_URL"
)

// Server Defaults
const (
	// DefaultServerHost is the default host the HTTP server binds to.
	DefaultServerHost = "0.0.0.0"

	// DefaultServerPort is the default port the HTTP server listens on.
	DefaultServerPort = 8080
)

// Request Limits
const (
	// MaxRequestBodySize limits request bodies to 1 MB.
	MaxRequestBodySize = 1 << 20

	// DefaultPage is the default page number for paginated listings.
	DefaultPage = 1

	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 20

	// MaxPageSize caps the page size a client may request.
	MaxPageSize = 100
)

// Database Connection Pool Defaults
const (
	// DefaultMaxOpenConns is the default maximum number of open DB connections.
	DefaultMaxOpenConns = 25

	// DefaultMaxIdleConns is the default maximum number of idle DB connections.
	DefaultMaxIdleConns = 10
)

// Profile Defaults applied when a new account is created.
const (
	// DefaultProfileImage is the avatar URL assigned to new accounts.
	DefaultProfileImage = "https://i.ibb.co/4pDNDk1/avatar.png"

	// DefaultProfileMobile is the placeholder phone value for new accounts.
	DefaultProfileMobile = "+91"

	// DefaultProfileBio is the placeholder bio text for new accounts.
	DefaultProfileBio = "bio"

	// MaxBioLength caps the length of a user's bio.
	MaxBioLength = 200
)
