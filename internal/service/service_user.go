package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/rewards-backend/internal/config"
	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/MKhiriev/rewards-backend/internal/store"
	"github.com/MKhiriev/rewards-backend/internal/utils"
	"github.com/MKhiriev/rewards-backend/internal/validators"
	"github.com/MKhiriev/rewards-backend/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	bcryptCost int
	pageSize   int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) UserService {
	pageSize := cfg.UsersPageSize
	if pageSize <= 0 {
		pageSize = config.DefaultUsersPageSize
	}

	return &userService{
		userRepository: userRepository,
		validator:      validator,
		bcryptCost:     cfg.BcryptCost,
		pageSize:       pageSize,
		logger:         logger,
	}
}

// ListUsers returns users newest first. A limit that is not positive or
// exceeds the page size is replaced by the page size.
func (s *userService) ListUsers(ctx context.Context, limit int) ([]models.PublicUser, error) {
	if limit <= 0 || limit > s.pageSize {
		limit = s.pageSize
	}

	users, err := s.userRepository.ListUsers(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return models.PublicUsers(users), nil
}

// CreateUser inserts a user on behalf of an admin. The password is optional;
// without one the account cannot log in.
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid user data provided")
		return models.PublicUser{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user := models.User{Name: req.Name, Email: req.Email}
	if req.Password != nil && *req.Password != "" {
		hash, err := utils.HashPassword(*req.Password, s.bcryptCost)
		if err != nil {
			return models.PublicUser{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
		}
		user.PasswordHash = &hash
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.PublicUser{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created.Public(), nil
}

// UpdateUser applies a partial update. At least one field must be present;
// a new password is hashed before it reaches the repository.
func (s *userService) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	if id <= 0 {
		return models.PublicUser{}, ErrInvalidUserID
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		req.Email = &email
	}

	update := req.ToUpdate()
	if update.IsEmpty() {
		return models.PublicUser{}, ErrNoFieldsToUpdate
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Int64("id", id).Msg("invalid user update provided")
		return models.PublicUser{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if update.Password != nil {
		hash, err := utils.HashPassword(*update.Password, s.bcryptCost)
		if err != nil {
			return models.PublicUser{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
		}
		update.Password = &hash
	}

	updated, err := s.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user update ended with error")
		return models.PublicUser{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated.Public(), nil
}

// DeleteUser removes a user and reports whether it existed.
func (s *userService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidUserID
	}

	deleted, err := s.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return false, fmt.Errorf("user deletion ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("id", id).Bool("existed", deleted).Msg("user deleted")
	return deleted, nil
}

func (s *userService) Stats(ctx context.Context) (models.Stats, error) {
	count, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		return models.Stats{}, fmt.Errorf("error counting users: %w", err)
	}

	return models.Stats{UsersCount: count}, nil
}
