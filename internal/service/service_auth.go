package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/rewards-backend/internal/config"
	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/MKhiriev/rewards-backend/internal/store"
	"github.com/MKhiriev/rewards-backend/internal/utils"
	"github.com/MKhiriev/rewards-backend/internal/validators"
	"github.com/MKhiriev/rewards-backend/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// bcryptCost is the work factor used when hashing new passwords.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// dummyHash is compared against when the email is unknown so that both
	// login failure paths cost one bcrypt comparison.
	dummyHash string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	// unknown-email logins compare against this hash
	dummyHash, err := utils.HashPassword(dummyPassword, cfg.BcryptCost)
	if err != nil {
		logger.Warn().Err(err).Msg("cannot precompute dummy password hash")
	}

	return &authService{
		userRepository: userRepository,
		validator:      validator,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.JWTSecret,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		dummyHash:      dummyHash,
		logger:         logger,
	}
}

// RegisterUser creates a new account with a bcrypt-hashed password and
// issues a token for it.
//
// Returns the public view of the user with a signed token or:
//   - ErrInvalidDataProvided if name, email or password is missing or malformed.
//   - ErrJWTSecretNotConfigured if no signing key is set; nothing is written.
//   - store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid registration data provided")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if a.tokenSignKey == "" {
		log.Error().Msg("cannot register user: JWT secret is not configured")
		return models.AuthResult{}, ErrJWTSecretNotConfigured
	}

	hash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hash,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.issue(ctx, created)
}

// Login authenticates an existing user by email and password.
//
// Returns the public view of the user with a signed token or:
//   - ErrInvalidDataProvided if email or password is missing.
//   - ErrInvalidCredentials if the email is unknown, the account has no
//     password, or the password does not match. The three cases are
//     indistinguishable to the caller.
//   - a wrapped storage error if the lookup itself fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid login data provided")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if a.tokenSignKey == "" {
		log.Error().Msg("cannot log in: JWT secret is not configured")
		return models.AuthResult{}, ErrJWTSecretNotConfigured
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		_ = utils.CheckPassword(a.dummyHash, req.Password)
		log.Debug().Msg("login attempt for unknown email")
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !user.HasPassword() {
		log.Debug().Int64("id", user.ID).Msg("login attempt for account without password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	if err = utils.CheckPassword(*user.PasswordHash, req.Password); err != nil {
		if !errors.Is(err, utils.ErrPasswordMismatch) {
			log.Err(err).Int64("id", user.ID).Msg("stored password hash is unusable")
		}
		log.Debug().Int64("id", user.ID).Msg("wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	return a.issue(ctx, user)
}

func (a *authService) issue(ctx context.Context, user models.User) (models.AuthResult, error) {
	token, err := a.CreateToken(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.ID).Msg("error creating token")
		return models.AuthResult{}, err
	}

	return models.AuthResult{User: user.Public(), Token: token.SignedString}, nil
}

// CreateToken issues a signed JWT carrying the user's id and email.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if a.tokenSignKey == "" {
		return models.Token{}, ErrJWTSecretNotConfigured
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if a.tokenSignKey == "" {
		return models.Token{}, ErrJWTSecretNotConfigured
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

const dummyPassword = "dummy-password-for-timing"

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
