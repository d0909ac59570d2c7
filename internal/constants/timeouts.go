// Package constants provides shared constant values used throughout the application.
//
// The timeouts.go file defines durations for HTTP server behavior,
// database connections and token lifetimes.
package constants

import "time"

// Server Timeouts
const (
	// DefaultReadTimeout limits how long the server waits to read a request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout limits how long the server may take to write a response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout limits how long idle keep-alive connections are held.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = 20 * time.Second
)

// Database Timeouts
const (
	// DBConnectionTimeout bounds the initial database ping.
	DBConnectionTimeout = 5 * time.Second

	// DBQueryTimeout bounds individual queries issued by repositories.
	DBQueryTimeout = 10 * time.Second

	// DBConnMaxLifetime is how long a pooled connection may be reused.
	DBConnMaxLifetime = 5 * time.Minute

	// DBConnMaxIdleTime is how long a connection may sit idle in the pool.
	DBConnMaxIdleTime = 5 * time.Minute
)

// Token Lifetimes
const (
	// DefaultSessionDuration is how long a session token remains valid.
	DefaultSessionDuration = 24 * time.Hour

	// ResetTokenDuration is how long a password reset token remains valid.
	ResetTokenDuration = 30 * time.Minute
)

// Background Maintenance
const (
	// MaintenanceInterval is how often expired reset tokens are swept.
	MaintenanceInterval = 1 * time.Hour
)

// Email Delivery
const (
	// EmailSendTimeout bounds a single SMTP delivery attempt.
	EmailSendTimeout = 15 * time.Second
)
