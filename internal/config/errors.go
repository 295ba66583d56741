package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration cannot be used to start the service.
var (
	// ErrMissingJWTSecret indicates that JWT_SECRET is empty in production.
	ErrMissingJWTSecret = errors.New("JWT_SECRET must be set in production")
	// ErrInvalidServerConfigs indicates an out-of-range port or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an unrecognised DB_SSL value.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid token, hashing or paging settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
