package config

import "time"

const (
	DefaultPort            = 10000
	DefaultAllowedOrigin   = "*"
	DefaultEnv             = "development"
	DefaultTokenIssuer     = "rewards-backend"
	DefaultTokenDuration   = 12 * time.Hour
	DefaultBcryptCost      = 10
	DefaultUsersPageSize   = 100
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	// developmentJWTSecret is only ever substituted outside production.
	developmentJWTSecret = "development-only-jwt-secret"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Env == "" {
		cfg.App.Env = DefaultEnv
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}
	if cfg.App.UsersPageSize == 0 {
		cfg.App.UsersPageSize = DefaultUsersPageSize
	}
	if cfg.App.JWTSecret == "" && !cfg.App.IsProduction() {
		cfg.App.JWTSecret = developmentJWTSecret
		cfg.App.UsingDevelopmentSecret = true
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.AllowedOrigin == "" {
		cfg.Server.AllowedOrigin = DefaultAllowedOrigin
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Log.Level == "" {
		if cfg.App.IsProduction() {
			cfg.Log.Level = "info"
		} else {
			cfg.Log.Level = "debug"
		}
	}
}
