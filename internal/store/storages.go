package store

import (
	"context"

	"github.com/udash/udash/internal/config"
	"github.com/udash/udash/internal/logger"
)

// Storages bundles all server-side repositories behind their interfaces.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages connects to the configured database and wires up all
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}, nil
}

// DB exposes the underlying connection for migrations.
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
