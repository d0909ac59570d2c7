// Package migrations creates and evolves the database schema.
//
// The tables.go file holds the ordered list of schema migrations.
package migrations

import "database/sql"

// All returns the migrations in the order they must run.
func All() []Migration {
	return []Migration{
		{
			Name:        "001_create_users",
			Description: "users table with credentials and profile fields",
			Run: func(tx *sql.Tx) error {
				_, err := tx.Exec(`
					CREATE TABLE IF NOT EXISTS users (
						id            BIGSERIAL PRIMARY KEY,
						name          TEXT        NOT NULL,
						email         TEXT        NOT NULL UNIQUE,
						password_hash TEXT        NOT NULL,
						salt          TEXT        NOT NULL,
						image         TEXT        NOT NULL DEFAULT '',
						mobile        TEXT        NOT NULL DEFAULT '',
						bio           TEXT        NOT NULL DEFAULT '',
						created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
						updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
					)
				`)
				return err
			},
		},
		{
			Name:        "002_create_password_reset_tokens",
			Description: "one reset token hash per user with expiry",
			Run: func(tx *sql.Tx) error {
				if _, err := tx.Exec(`
					CREATE TABLE IF NOT EXISTS password_reset_tokens (
						user_id    BIGINT      PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
						token_hash TEXT        NOT NULL,
						expires_at TIMESTAMPTZ NOT NULL,
						created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
					)
				`); err != nil {
					return err
				}
				_, err := tx.Exec(`
					CREATE INDEX IF NOT EXISTS idx_password_reset_tokens_hash
					ON password_reset_tokens (token_hash)
				`)
				return err
			},
		},
		{
			Name:        "003_create_products",
			Description: "per-user inventory products",
			Run: func(tx *sql.Tx) error {
				if _, err := tx.Exec(`
					CREATE TABLE IF NOT EXISTS products (
						id          BIGSERIAL   PRIMARY KEY,
						user_id     BIGINT      NOT NULL REFERENCES users(id) ON DELETE CASCADE,
						name        TEXT        NOT NULL,
						sku         TEXT        NOT NULL,
						category    TEXT        NOT NULL,
						quantity    INTEGER     NOT NULL DEFAULT 0,
						price       NUMERIC(12,2) NOT NULL DEFAULT 0,
						description TEXT        NOT NULL DEFAULT '',
						image       TEXT        NOT NULL DEFAULT '',
						created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
						updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
						UNIQUE (user_id, sku)
					)
				`); err != nil {
					return err
				}
				_, err := tx.Exec(`
					CREATE INDEX IF NOT EXISTS idx_products_user_id
					ON products (user_id)
				`)
				return err
			},
		},
	}
}
