package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by CheckPassword when the password does not
// match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match hash")

// HashPassword returns the bcrypt hash of password using the given cost.
//
// A cost outside [bcrypt.MinCost, bcrypt.MaxCost] is rejected by bcrypt.
// Passwords longer than 72 bytes are rejected as well
// (bcrypt.ErrPasswordTooLong).
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a bcrypt hash with a plain-text password.
//
// Returns nil on success and ErrPasswordMismatch when the password is wrong.
// A malformed hash yields a wrapped bcrypt error.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("error comparing password hash: %w", err)
	}
	return nil
}
