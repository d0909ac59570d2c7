// Package migrations creates and evolves the database schema. Applied
// migrations are recorded in a schema_migrations table so each runs
// exactly once.
package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/gsvlabs/storefront-backend/internal/database"
)

// Migration is a single schema change.
type Migration struct {
	// Name uniquely identifies the migration in the ledger.
	Name string

	// Description says what the migration does, for logs.
	Description string

	// Run applies the change inside the given transaction.
	Run func(tx *sql.Tx) error
}

const createLedgerSQL = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// Run applies all pending migrations in order. Each migration runs in
// its own transaction together with its ledger entry, so a failure
// leaves the schema at the last completed migration.
func Run(ctx context.Context, db *database.Pool) error {
	if _, err := db.ExecContext(ctx, createLedgerSQL); err != nil {
		return fmt.Errorf("creating migrations ledger: %w", err)
	}

	for _, m := range All() {
		applied, err := isApplied(ctx, db, m.Name)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		err = db.Transaction(ctx, func(tx *sql.Tx) error {
			if err := m.Run(tx); err != nil {
				return fmt.Errorf("migration %s: %w", m.Name, err)
			}
			if _, err := tx.Exec(`INSERT INTO schema_migrations (name) VALUES ($1)`, m.Name); err != nil {
				return fmt.Errorf("recording migration %s: %w", m.Name, err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		log.Info().Str("migration", m.Name).Str("description", m.Description).Msg("Applied migration")
	}

	return nil
}

func isApplied(ctx context.Context, db *database.Pool, name string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE name = $1)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking migration %s: %w", name, err)
	}
	return exists, nil
}
