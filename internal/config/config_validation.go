// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A missing DATABASE_URL is deliberately accepted: the process starts and
// database-backed routes report the missing value.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.IsProduction() && cfg.App.JWTSecret == "" {
		return ErrMissingJWTSecret
	}

	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range [%d, %d]",
			ErrInvalidAppConfigs, cfg.App.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.App.UsersPageSize < 1 {
		return fmt.Errorf("%w: users page size must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.SSLMode() == SSLInvalid {
		return fmt.Errorf("%w: unknown DB_SSL value %q", ErrInvalidStorageConfigs, cfg.Storage.DB.SSL)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
