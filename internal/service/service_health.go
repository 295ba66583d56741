package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/MKhiriev/rewards-backend/internal/store"
	"github.com/MKhiriev/rewards-backend/models"
)

// schemaEnsurer creates the tables the service relies on.
type schemaEnsurer interface {
	EnsureSchema(ctx context.Context) error
}

type healthService struct {
	db     store.Database
	schema schemaEnsurer

	logger *logger.Logger
}

func NewHealthService(db store.Database, schema schemaEnsurer, logger *logger.Logger) HealthService {
	return &healthService{
		db:     db,
		schema: schema,
		logger: logger,
	}
}

// DatabaseTime performs a round trip to the database and returns its clock.
func (h *healthService) DatabaseTime(ctx context.Context) (models.DatabaseTime, error) {
	now, err := h.db.Now(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("database round trip failed")
		return models.DatabaseTime{}, fmt.Errorf("database round trip failed: %w", err)
	}
	return models.DatabaseTime{Now: now}, nil
}

// InitDatabase creates the missing tables.
func (h *healthService) InitDatabase(ctx context.Context) error {
	if err := h.schema.EnsureSchema(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("schema creation failed")
		return fmt.Errorf("schema creation failed: %w", err)
	}
	return nil
}
