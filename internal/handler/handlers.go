package handler

import (
	"github.com/MKhiriev/rewards-backend/internal/config"
	"github.com/MKhiriev/rewards-backend/internal/handler/http"
	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/MKhiriev/rewards-backend/internal/metrics"
	"github.com/MKhiriev/rewards-backend/internal/service"
)

type Handlers struct {
	HTTP *http.Handler

	// Metrics is nil when METRICS_DISABLED is set.
	Metrics *metrics.Metrics
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}

	handlers := &Handlers{}
	if !cfg.MetricsDisabled {
		handlers.Metrics = metrics.New()
	}
	handlers.HTTP = http.NewHandler(services, cfg, handlers.Metrics, logger)

	return handlers, nil
}
