package service

import (
	"context"
	"time"

	"github.com/MKhiriev/rewards-backend/internal/config"
	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/MKhiriev/rewards-backend/models"
)

// LivenessMessage is returned by the root endpoint.
const LivenessMessage = "Rewards backend is running successfully!"

type appInfoService struct {
	appVersion  string
	environment string
	startedAt   time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:  cfg.Version,
		environment: cfg.Env,
		startedAt:   time.Now(),
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// GetStatus returns the liveness payload. It never touches the database.
func (s *appInfoService) GetStatus(ctx context.Context) models.AppStatus {
	return models.AppStatus{
		Message:     LivenessMessage,
		Version:     s.appVersion,
		Environment: s.environment,
		Uptime:      time.Since(s.startedAt).Truncate(time.Second).String(),
	}
}
