// Package constants provides shared constant values used throughout the application.
//
// The database_const.go file defines table names, column names and
// connection parameters for the PostgreSQL storage layer.
package constants

// Table Names
const (
	// TableUsers is the users table.
	TableUsers = "users"

	// TablePasswordResetTokens is the password reset tokens table.
	TablePasswordResetTokens = "password_reset_tokens"

	// TableProducts is the products table.
	TableProducts = "products"

	// TableSchemaMigrations tracks applied schema migrations.
	TableSchemaMigrations = "schema_migrations"
)

// Common Column Names shared across tables.
const (
	// ColumnID is the primary key column name.
	ColumnID = "id"

	// ColumnUserID is the user foreign key column name.
	ColumnUserID = "user_id"

	// ColumnCreatedAt is the creation timestamp column name.
	ColumnCreatedAt = "created_at"

	// ColumnUpdatedAt is the update timestamp column name.
	ColumnUpdatedAt = "updated_at"

	// ColumnExpiresAt is the expiry timestamp column name.
	ColumnExpiresAt = "expires_at"
)

// Users Table Columns
const (
	// ColumnEmail is the email column in the users table.
	ColumnEmail = "email"

	// ColumnName is the display name column in the users table.
	ColumnName = "name"

	// ColumnPasswordHash is the password hash column in the users table.
	ColumnPasswordHash = "password_hash"

	// ColumnSalt is the password salt column in the users table.
	ColumnSalt = "salt"
)

// Password Reset Token Columns
const (
	// ColumnTokenHash is the hashed token column in the reset tokens table.
	ColumnTokenHash = "token_hash"
)

// Connection Parameters
const (
	// PostgresDriverName is the registered name of the Postgres driver.
	PostgresDriverName = "postgres"

	// SSLModeDisable disables TLS for local development connections.
	SSLModeDisable = "disable"

	// SSLModeRequire requires TLS for production connections.
	SSLModeRequire = "require"
)
