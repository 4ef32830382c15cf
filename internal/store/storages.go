package store

import (
	"context"
	"fmt"

	"github.com/complyra/claimshield/internal/config"
	"github.com/complyra/claimshield/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection. One instance is built at startup and handed to the service
// layer.
type Storages struct {
	UserRepository  UserRepository
	ClaimRepository ClaimRepository

	db *DB
}

// NewStorages connects to Postgres, applies pending migrations, and wires
// all repositories onto the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		ClaimRepository: NewClaimRepository(db, log),
		db:              db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
