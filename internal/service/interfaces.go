package service

import (
	"context"

	"github.com/MKhiriev/rewards-backend/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	ListUsers(ctx context.Context, limit int) ([]models.PublicUser, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.PublicUser, error)
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.PublicUser, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
	Stats(ctx context.Context) (models.Stats, error)
}

type SettingsService interface {
	ListSettings(ctx context.Context) ([]models.Setting, error)
	UpsertSetting(ctx context.Context, setting models.Setting) error
}

type HealthService interface {
	DatabaseTime(ctx context.Context) (models.DatabaseTime, error)
	InitDatabase(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetStatus(ctx context.Context) models.AppStatus
}
