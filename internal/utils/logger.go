// Package utils provides shared helpers used across the application.
//
// The logger.go file configures the global zerolog logger and provides
// helpers for logging database queries and authentication events with
// consistent fields. Sensitive values are redacted before they reach
// the log stream.
package utils

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gsvlabs/storefront-backend/internal/constants"
)

// InitLogger configures the global logger for the given environment and
// level. Development and test environments get human-readable console
// output; production logs structured JSON.
func InitLogger(environment, level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(parseLevel(level))

	if environment != constants.EnvProduction {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	log.Logger = log.With().
		Str("service", constants.AppName).
		Str("environment", environment).
		Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// LogDBQuery logs a database query at debug level with its duration.
// Parameter values are not logged; only the query text and timing.
func LogDBQuery(query string, duration time.Duration, err error) {
	event := log.Debug().
		Str("component", "database").
		Str("query", squashWhitespace(query)).
		Dur("duration", duration)

	if err != nil {
		event = log.Error().
			Err(err).
			Str("component", "database").
			Str("query", squashWhitespace(query)).
			Dur("duration", duration)
	}

	event.Msg("Database query executed")
}

// LogAuth logs an authentication event such as a login or a password
// reset. The email is masked so logs never carry a full address.
func LogAuth(event string, userID int64, email string, success bool) {
	log.Info().
		Str("category", constants.LogCategoryAuth).
		Str("event", event).
		Int64("user_id", userID).
		Str("email", MaskEmail(email)).
		Bool("success", success).
		Msg("Authentication event")
}

// MaskEmail obscures the local part of an email address for logging,
// keeping only the first character and the domain.
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return constants.LogRedactedValue
	}
	return email[:1] + "***" + email[at:]
}

func squashWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
