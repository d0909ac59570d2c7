package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsvlabs/storefront-backend/internal/constants"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
app:
  environment: test
server:
  port: 9090
database:
  user: storefront
  name: storefront_test
session:
  jwt_secret: `+testSecret+`
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, constants.EnvTest, cfg.App.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "storefront_test", cfg.Database.Name)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
database:
  user: storefront
  name: storefront
session:
  jwt_secret: `+testSecret+`
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, constants.EnvDevelopment, cfg.App.Environment)
	assert.Equal(t, constants.DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, constants.DefaultSessionDuration, cfg.Session.Duration)
	assert.Equal(t, constants.SSLModeDisable, cfg.Database.SSLMode)
	assert.Equal(t, uint32(constants.DefaultHashMemory), cfg.Hash.Memory)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Session.CookieSecure())
}

func TestLoad_ProductionDefaults(t *testing.T) {
	path := writeConfigFile(t, `
app:
  environment: production
database:
  user: storefront
  name: storefront
session:
  jwt_secret: `+testSecret+`
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, constants.SSLModeRequire, cfg.Database.SSLMode)
	assert.True(t, cfg.Session.CookieSecure())
}

func TestLoad_AllowInsecureCookie(t *testing.T) {
	path := writeConfigFile(t, `
database:
  user: storefront
  name: storefront
session:
  jwt_secret: `+testSecret+`
  allow_insecure_cookie: true
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.False(t, cfg.Session.CookieSecure())
}

func TestLoad_InsecureCookieRejectedInProduction(t *testing.T) {
	path := writeConfigFile(t, `
app:
  environment: production
database:
  user: storefront
  name: storefront
session:
  jwt_secret: `+testSecret+`
  allow_insecure_cookie: true
`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "allow_insecure_cookie")
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
database:
  user: storefront
  name: storefront
session:
  jwt_secret: `+testSecret+`
`)

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SESSION_DURATION", "2h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example.com, https://admin.example.com")
	t.Setenv("RATE_LIMIT_ENABLED", "true")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 2*time.Hour, cfg.Session.Duration)
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("DB_USER", "storefront")
	t.Setenv("DB_NAME", "storefront")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, testSecret, cfg.Session.JWTSecret)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing secret", "database:\n  user: u\n  name: n\n"},
		{"short secret", "database:\n  user: u\n  name: n\nsession:\n  jwt_secret: short\n"},
		{"missing database", "session:\n  jwt_secret: " + testSecret + "\n"},
		{"bad environment", "app:\n  environment: staging\ndatabase:\n  user: u\n  name: n\nsession:\n  jwt_secret: " + testSecret + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfigFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	path := writeConfigFile(t, `
database:
  user: storefront
  name: storefront
session:
  jwt_secret: `+testSecret+`
`)

	t.Setenv("SERVER_PORT", "not-a-number")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDatabaseSettingsDSN(t *testing.T) {
	d := DatabaseSettings{
		Host: "localhost", Port: 5432, User: "u", Password: "p",
		Name: "storefront", SSLMode: "disable",
	}

	assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=storefront sslmode=disable", d.DSN())
}
