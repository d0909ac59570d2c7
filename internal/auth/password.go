// Package auth implements credential handling: password hashing,
// session token issuance and verification, and the middleware that
// attaches the authenticated principal to each request.
//
// The password.go file implements Argon2id password hashing. Hash and
// salt are stored separately as base64 strings.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/gsvlabs/storefront-backend/internal/constants"
)

// PasswordConfig holds the Argon2id parameters.
type PasswordConfig struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultPasswordConfig returns the standard hashing parameters.
func DefaultPasswordConfig() *PasswordConfig {
	return &PasswordConfig{
		Memory:      constants.DefaultHashMemory,
		Iterations:  constants.DefaultHashIterations,
		Parallelism: constants.DefaultHashParallelism,
		SaltLength:  constants.DefaultSaltLength,
		KeyLength:   constants.DefaultKeyLength,
	}
}

// HashPassword hashes a password with a freshly generated salt and
// returns both as base64 strings.
func HashPassword(password string, cfg *PasswordConfig) (hash string, salt string, err error) {
	if cfg == nil {
		cfg = DefaultPasswordConfig()
	}

	saltBytes := make([]byte, cfg.SaltLength)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), saltBytes, cfg.Iterations, cfg.Memory, cfg.Parallelism, cfg.KeyLength)

	return base64.RawStdEncoding.EncodeToString(key),
		base64.RawStdEncoding.EncodeToString(saltBytes),
		nil
}

// VerifyPassword checks a password against a stored hash and salt in
// constant time.
func VerifyPassword(password, storedHash, storedSalt string, cfg *PasswordConfig) (bool, error) {
	if cfg == nil {
		cfg = DefaultPasswordConfig()
	}

	saltBytes, err := base64.RawStdEncoding.DecodeString(storedSalt)
	if err != nil {
		return false, fmt.Errorf("decoding salt: %w", err)
	}

	hashBytes, err := base64.RawStdEncoding.DecodeString(storedHash)
	if err != nil {
		return false, fmt.Errorf("decoding hash: %w", err)
	}

	key := argon2.IDKey([]byte(password), saltBytes, cfg.Iterations, cfg.Memory, cfg.Parallelism, uint32(len(hashBytes)))

	return subtle.ConstantTimeCompare(key, hashBytes) == 1, nil
}
