package store

import (
	"context"
	"time"

	"github.com/MKhiriev/rewards-backend/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Database is the subset of the connection pool used for health checks.
type Database interface {
	Ping(ctx context.Context) error
	Now(ctx context.Context) (time.Time, error)
}

// UserRepository persists accounts of the "users" table.
type UserRepository interface {
	EnsureTable(ctx context.Context) error
	ListUsers(ctx context.Context, limit int) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
	CountUsers(ctx context.Context) (int64, error)
}

// SettingsRepository persists key/value pairs of the "settings" table.
type SettingsRepository interface {
	EnsureTable(ctx context.Context) error
	ListSettings(ctx context.Context) ([]models.Setting, error)
	UpsertSetting(ctx context.Context, setting models.Setting) error
}
