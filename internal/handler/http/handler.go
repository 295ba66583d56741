package http

import (
	"github.com/MKhiriev/rewards-backend/internal/config"
	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/MKhiriev/rewards-backend/internal/metrics"
	"github.com/MKhiriev/rewards-backend/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	// metrics is nil when instrumentation is disabled.
	metrics *metrics.Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  metrics,
		logger:   logger,
	}
}
