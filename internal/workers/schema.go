// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/rewards-backend/internal/logger"
)

// SchemaWorker creates the users and settings tables once at startup.
// Failures are logged and left for /api/init-db to retry.
type SchemaWorker struct {
	ensurer SchemaEnsurer
	timeout time.Duration
	logger  *logger.Logger
	done    chan error
}

func NewSchemaWorker(ensurer SchemaEnsurer, timeout time.Duration, logger *logger.Logger) *SchemaWorker {
	return &SchemaWorker{
		ensurer: ensurer,
		timeout: timeout,
		logger:  logger,
		done:    make(chan error, 1),
	}
}

func (w *SchemaWorker) Run(ctx context.Context) {
	go func() {
		if w.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, w.timeout)
			defer cancel()
		}

		err := w.ensurer.EnsureSchema(ctx)
		if err != nil {
			w.logger.Warn().Err(err).Msg("startup schema creation failed, use /api/init-db to retry")
		} else {
			w.logger.Info().Msg("database schema is ready")
		}
		w.done <- err
	}()
}

// Done yields the result of the run. It receives exactly one value per Run.
func (w *SchemaWorker) Done() <-chan error {
	return w.done
}
