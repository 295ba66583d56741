package service

import (
	"fmt"

	"github.com/MKhiriev/rewards-backend/internal/config"
	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/MKhiriev/rewards-backend/internal/store"
	"github.com/MKhiriev/rewards-backend/internal/validators"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	SettingsService SettingsService
	HealthService   HealthService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		UserService:     NewUserService(storages.UserRepository, validator, cfg.App, logger),
		SettingsService: NewSettingsService(storages.SettingsRepository, validator, logger),
		HealthService:   NewHealthService(storages.DB, storages, logger),
		AppInfoService:  appInfoService,
	}, nil
}
