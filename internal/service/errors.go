package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNoFieldsToUpdate    = errors.New("no fields to update")
	ErrInvalidUserID       = errors.New("invalid user id")

	// ErrInvalidCredentials is returned by Login for an unknown email, a wrong
	// password and an account without a password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrJWTSecretNotConfigured  = errors.New("JWT_SECRET not configured")

	ErrPasswordHashingFailed = errors.New("password hashing failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
