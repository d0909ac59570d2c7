// Package database manages the PostgreSQL connection pool and provides
// small helpers shared by the repository layer.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/gsvlabs/storefront-backend/internal/config"
	"github.com/gsvlabs/storefront-backend/internal/constants"
)

// Pool wraps the database handle so repositories depend on this package
// rather than database/sql directly.
type Pool struct {
	*sql.DB
}

// Connect opens a PostgreSQL connection pool using the given settings
// and verifies connectivity with a ping.
func Connect(cfg config.DatabaseSettings) (*Pool, error) {
	db, err := sql.Open(constants.PostgresDriverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(constants.DBConnMaxLifetime)
	db.SetConnMaxIdleTime(constants.DBConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), constants.DBConnectionTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			log.Warn().Err(closeErr).Msg("Failed to close database after ping failure")
		}
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Name).
		Int("max_open_conns", cfg.MaxOpenConns).
		Msg("Database connection established")

	return &Pool{DB: db}, nil
}

// Transaction runs fn inside a transaction, committing on success and
// rolling back on error or panic.
func (p *Pool) Transaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := p.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("Rollback failed after panic")
			}
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rolling back transaction: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// HealthCheck pings the database with a short timeout. It backs the
// health endpoint.
func (p *Pool) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DBConnectionTimeout)
	defer cancel()

	start := time.Now()
	err := p.PingContext(ctx)
	if err != nil {
		log.Error().Err(err).Dur("duration", time.Since(start)).Msg("Database health check failed")
		return fmt.Errorf("database health check: %w", err)
	}
	return nil
}
