package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/MKhiriev/rewards-backend/internal/store"
	"github.com/MKhiriev/rewards-backend/internal/validators"
	"github.com/MKhiriev/rewards-backend/models"
)

type settingsService struct {
	settingsRepository store.SettingsRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewSettingsService(settingsRepository store.SettingsRepository, validator validators.Validator, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		validator:          validator,
		logger:             logger,
	}
}

func (s *settingsService) ListSettings(ctx context.Context) ([]models.Setting, error) {
	settings, err := s.settingsRepository.ListSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing settings: %w", err)
	}
	return settings, nil
}

// UpsertSetting stores the value under key, replacing any previous value.
func (s *settingsService) UpsertSetting(ctx context.Context, setting models.Setting) error {
	setting.Key = strings.TrimSpace(setting.Key)
	if err := s.validator.Validate(ctx, setting); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.settingsRepository.UpsertSetting(ctx, setting); err != nil {
		return fmt.Errorf("error saving setting: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("key", setting.Key).Msg("setting saved")
	return nil
}
