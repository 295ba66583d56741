package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/MKhiriev/rewards-backend/internal/mock"
	"github.com/MKhiriev/rewards-backend/internal/store"
	"github.com/MKhiriev/rewards-backend/internal/validators"
	"github.com/MKhiriev/rewards-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserSvc(t *testing.T) (UserService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	return NewUserService(repo, validators.NewRequestValidator(), testAppConfig(), logger.Nop()), repo
}

func ptr(s string) *string {
	return &s
}

func TestUserService_ListUsers_CapsLimit(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{name: "default", requested: 0, want: 100},
		{name: "negative", requested: -5, want: 100},
		{name: "above cap", requested: 1000, want: 100},
		{name: "within cap", requested: 10, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestUserSvc(t)
			repo.EXPECT().ListUsers(gomock.Any(), tt.want).Return([]models.User{}, nil)

			users, err := svc.ListUsers(context.Background(), tt.requested)
			require.NoError(t, err)
			assert.Empty(t, users)
		})
	}
}

func TestUserService_ListUsers_HidesHashes(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	hash := "secret-hash"

	repo.EXPECT().ListUsers(gomock.Any(), 100).Return([]models.User{
		{ID: 2, Name: "Bob", Email: "bob@x.com", PasswordHash: &hash},
		{ID: 1, Name: "Ana", Email: "a@x.com"},
	}, nil)

	users, err := svc.ListUsers(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, models.PublicUser{ID: 2, Name: "Bob", Email: "bob@x.com"}, users[0])
}

func TestUserService_CreateUser_WithPassword(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			require.NotNil(t, u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("pw")))
			u.ID = 3
			u.CreatedAt = time.Now()
			return u, nil
		},
	)

	user, err := svc.CreateUser(context.Background(), models.CreateUserRequest{Name: "Cid", Email: "cid@x.com", Password: ptr("pw")})
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
}

func TestUserService_CreateUser_WithoutPassword(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().CreateUser(gomock.Any(), models.User{Name: "Bob", Email: "bob@x.com"}).
		Return(models.User{ID: 4, Name: "Bob", Email: "bob@x.com"}, nil)

	user, err := svc.CreateUser(context.Background(), models.CreateUserRequest{Name: "Bob", Email: "bob@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "bob@x.com", user.Email)
}

func TestUserService_CreateUser_MissingEmail(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{Name: "Bob"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Contains(t, err.Error(), "email is required")
}

func TestUserService_CreateUser_Conflict(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{Name: "Bob", Email: "bob@x.com"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_UpdateUser_EmptyIsRejectedWithoutWrite(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	// the mock has no expectations: any repository call fails the test
	_, err := svc.UpdateUser(context.Background(), 1, models.UpdateUserRequest{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestUserService_UpdateUser_InvalidID(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	for _, id := range []int64{0, -1} {
		_, err := svc.UpdateUser(context.Background(), id, models.UpdateUserRequest{Name: ptr("x")})
		assert.ErrorIs(t, err, ErrInvalidUserID)
	}
}

func TestUserService_UpdateUser_BlankField(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	_, err := svc.UpdateUser(context.Background(), 1, models.UpdateUserRequest{Name: ptr("   ")})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_UpdateUser_HashesPassword(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().UpdateUser(gomock.Any(), int64(7), gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64, u models.UserUpdate) (models.User, error) {
			assert.Nil(t, u.Name)
			require.NotNil(t, u.Password)
			assert.NotEqual(t, "new-password", *u.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte("new-password")))
			return models.User{ID: id, Name: "Ana", Email: "a@x.com", PasswordHash: u.Password}, nil
		},
	)

	user, err := svc.UpdateUser(context.Background(), 7, models.UpdateUserRequest{Password: ptr("new-password")})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
}

func TestUserService_UpdateUser_Subset(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().UpdateUser(gomock.Any(), int64(1), models.UserUpdate{Email: ptr("new@x.com")}).
		Return(models.User{ID: 1, Name: "Ana", Email: "new@x.com"}, nil)

	user, err := svc.UpdateUser(context.Background(), 1, models.UpdateUserRequest{Email: ptr(" New@X.com ")})
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", user.Email)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().UpdateUser(gomock.Any(), int64(99), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.UpdateUser(context.Background(), 99, models.UpdateUserRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_DeleteUser(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().DeleteUser(gomock.Any(), int64(3)).Return(true, nil)
	repo.EXPECT().DeleteUser(gomock.Any(), int64(4)).Return(false, nil)

	deleted, err := svc.DeleteUser(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteUser(context.Background(), 4)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = svc.DeleteUser(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidUserID)
}

func TestUserService_Stats(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(12), nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Stats{UsersCount: 12}, stats)
}

func TestUserService_Stats_Error(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(0), store.ErrDatabaseNotConfigured)

	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, store.ErrDatabaseNotConfigured)
}
