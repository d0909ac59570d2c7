// Package config loads application configuration from a YAML file and
// environment variables. Environment variables take precedence over the
// file, which makes container deployments configurable without editing
// files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/gsvlabs/storefront-backend/internal/constants"
)

// AppConfig is the root configuration object for the application.
type AppConfig struct {
	App       AppSettings       `yaml:"app"`
	Server    ServerSettings    `yaml:"server"`
	Database  DatabaseSettings  `yaml:"database"`
	Session   SessionSettings   `yaml:"session"`
	Email     EmailSettings     `yaml:"email"`
	Frontend  FrontendSettings  `yaml:"frontend"`
	Hash      HashSettings      `yaml:"hash"`
	CORS      CORSSettings      `yaml:"cors"`
	RateLimit RateLimitSettings `yaml:"rate_limit"`
	Logging   LoggingSettings   `yaml:"logging"`
}

// AppSettings holds application identity settings.
type AppSettings struct {
	Name        string `yaml:"name" env:"APP_NAME"`
	Environment string `yaml:"environment" env:"APP_ENV"`
	Version     string `yaml:"version" env:"APP_VERSION"`
}

// ServerSettings holds HTTP server settings.
type ServerSettings struct {
	Host            string        `yaml:"host" env:"SERVER_HOST"`
	Port            int           `yaml:"port" env:"SERVER_PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// DatabaseSettings holds PostgreSQL connection settings.
type DatabaseSettings struct {
	Host         string `yaml:"host" env:"DB_HOST"`
	Port         int    `yaml:"port" env:"DB_PORT"`
	User         string `yaml:"user" env:"DB_USER"`
	Password     string `yaml:"password" env:"DB_PASSWORD"`
	Name         string `yaml:"name" env:"DB_NAME"`
	SSLMode      string `yaml:"ssl_mode" env:"DB_SSL_MODE"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
}

// DSN builds the Postgres connection string from the settings.
func (d DatabaseSettings) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// SessionSettings holds JWT session token settings.
type SessionSettings struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET"`
	Duration  time.Duration `yaml:"duration" env:"SESSION_DURATION"`
	// AllowInsecureCookie drops the Secure attribute on the session
	// cookie for plain-HTTP development setups. The cookie is
	// SameSite=None, which browsers discard without Secure, so this
	// is off by default and rejected in production.
	AllowInsecureCookie bool `yaml:"allow_insecure_cookie" env:"SESSION_ALLOW_INSECURE_COOKIE"`
}

// CookieSecure reports whether the session cookie carries the Secure
// attribute.
func (s SessionSettings) CookieSecure() bool {
	return !s.AllowInsecureCookie
}

// EmailSettings holds SMTP delivery settings.
type EmailSettings struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     int    `yaml:"port" env:"SMTP_PORT"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from" env:"SMTP_FROM"`
	// ContactRecipient receives contact-form submissions.
	ContactRecipient string `yaml:"contact_recipient" env:"CONTACT_RECIPIENT"`
}

// FrontendSettings holds settings for links generated for the web client.
type FrontendSettings struct {
	// BaseURL is the public URL of the frontend, used in reset links.
	BaseURL string `yaml:"base_url" env:"FRONTEND_URL"`
}

// HashSettings holds Argon2id password hashing parameters.
type HashSettings struct {
	Memory      uint32 `yaml:"memory" env:"HASH_MEMORY"`
	Iterations  uint32 `yaml:"iterations" env:"HASH_ITERATIONS"`
	Parallelism uint8  `yaml:"parallelism" env:"HASH_PARALLELISM"`
	SaltLength  uint32 `yaml:"salt_length" env:"HASH_SALT_LENGTH"`
	KeyLength   uint32 `yaml:"key_length" env:"HASH_KEY_LENGTH"`
}

// CORSSettings holds cross-origin settings for the browser client.
type CORSSettings struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
}

// RateLimitSettings holds throttling settings for credential endpoints.
type RateLimitSettings struct {
	Enabled bool    `yaml:"enabled" env:"RATE_LIMIT_ENABLED"`
	Rate    float64 `yaml:"rate" env:"RATE_LIMIT_RATE"`
	Burst   int     `yaml:"burst" env:"RATE_LIMIT_BURST"`
}

// LoggingSettings holds log output settings.
type LoggingSettings struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

// Load reads configuration from the YAML file at path, if it exists,
// then applies environment variable overrides, defaults and validation.
// A missing file is not an error; everything can come from the
// environment.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		case os.IsNotExist(err):
			log.Warn().Str("path", path).Msg("Config file not found, using environment and defaults")
		default:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	setDefaults(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	logConfig(cfg)
	return cfg, nil
}

func setDefaults(cfg *AppConfig) {
	if cfg.App.Name == "" {
		cfg.App.Name = constants.AppName
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = constants.EnvDevelopment
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = constants.DefaultServerHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = constants.DefaultServerPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = constants.DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = constants.DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = constants.DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = constants.DefaultShutdownTimeout
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.SSLMode == "" {
		if cfg.App.Environment == constants.EnvProduction {
			cfg.Database.SSLMode = constants.SSLModeRequire
		} else {
			cfg.Database.SSLMode = constants.SSLModeDisable
		}
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = constants.DefaultMaxOpenConns
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = constants.DefaultMaxIdleConns
	}
	if cfg.Session.Duration == 0 {
		cfg.Session.Duration = constants.DefaultSessionDuration
	}
	if cfg.Email.Port == 0 {
		cfg.Email.Port = 587
	}
	if cfg.Frontend.BaseURL == "" {
		cfg.Frontend.BaseURL = "http://localhost:3000"
	}
	if cfg.Hash.Memory == 0 {
		cfg.Hash.Memory = constants.DefaultHashMemory
	}
	if cfg.Hash.Iterations == 0 {
		cfg.Hash.Iterations = constants.DefaultHashIterations
	}
	if cfg.Hash.Parallelism == 0 {
		cfg.Hash.Parallelism = constants.DefaultHashParallelism
	}
	if cfg.Hash.SaltLength == 0 {
		cfg.Hash.SaltLength = constants.DefaultSaltLength
	}
	if cfg.Hash.KeyLength == 0 {
		cfg.Hash.KeyLength = constants.DefaultKeyLength
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{cfg.Frontend.BaseURL}
	}
	if cfg.RateLimit.Rate == 0 {
		cfg.RateLimit.Rate = 1
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 10
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

func validateConfig(cfg *AppConfig) error {
	if cfg.Session.JWTSecret == "" {
		return fmt.Errorf("session.jwt_secret (JWT_SECRET) is required")
	}
	if len(cfg.Session.JWTSecret) < constants.MinJWTSecretLength {
		return fmt.Errorf("session.jwt_secret must be at least %d characters", constants.MinJWTSecretLength)
	}
	if cfg.Database.User == "" || cfg.Database.Name == "" {
		return fmt.Errorf("database.user and database.name are required")
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", cfg.Server.Port)
	}
	switch cfg.App.Environment {
	case constants.EnvDevelopment, constants.EnvTest, constants.EnvProduction:
	default:
		return fmt.Errorf("app.environment %q is not recognized", cfg.App.Environment)
	}
	if cfg.App.Environment == constants.EnvProduction && cfg.Session.AllowInsecureCookie {
		return fmt.Errorf("session.allow_insecure_cookie cannot be set in production")
	}
	return nil
}

// logConfig logs the effective configuration with secrets redacted.
func logConfig(cfg *AppConfig) {
	log.Info().
		Str("environment", cfg.App.Environment).
		Str("server", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)).
		Str("database", fmt.Sprintf("%s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)).
		Str("db_password", constants.LogRedactedValue).
		Str("jwt_secret", constants.LogRedactedValue).
		Str("smtp", fmt.Sprintf("%s:%d", cfg.Email.Host, cfg.Email.Port)).
		Str("frontend", cfg.Frontend.BaseURL).
		Str("log_level", cfg.Logging.Level).
		Msg("Configuration loaded")
}
