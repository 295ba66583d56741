package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/rewards-backend/internal/logger"
)

// Storages aggregates the repositories sharing one connection pool.
type Storages struct {
	DB                 *DB
	UserRepository     UserRepository
	SettingsRepository SettingsRepository
}

// NewStorages wires all repositories to db. db may be nil when the database
// is not configured.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:                 db,
		UserRepository:     NewUserRepository(db, log),
		SettingsRepository: NewSettingsRepository(db, log),
	}
}

// EnsureSchema creates every table that does not exist yet. All statements
// are attempted even if one of them fails.
func (s *Storages) EnsureSchema(ctx context.Context) error {
	return errors.Join(
		s.UserRepository.EnsureTable(ctx),
		s.SettingsRepository.EnsureTable(ctx),
	)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
