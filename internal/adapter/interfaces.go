package adapter

import (
	"context"

	"github.com/MKhiriev/rewards-backend/models"
)

// RewardsAPI is a typed client of the rewards backend REST API.
//
// Register and Login store the returned token; every later call that needs
// authentication sends it as a bearer token.
type RewardsAPI interface {
	SetToken(token string)
	Token() string

	Health(ctx context.Context) (models.AppStatus, error)
	TestDB(ctx context.Context) (models.DatabaseTime, error)

	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)

	ListUsers(ctx context.Context, limit int) ([]models.PublicUser, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.PublicUser, error)
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.PublicUser, error)
	DeleteUser(ctx context.Context, id int64) error
	Stats(ctx context.Context) (models.Stats, error)

	ListSettings(ctx context.Context) ([]models.Setting, error)
	UpsertSetting(ctx context.Context, setting models.Setting) error
}
