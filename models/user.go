// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account row of the "users" table.
//
// PasswordHash is nullable: accounts inserted by an admin without a password
// have none and can never log in. The hash is never serialized to JSON; use
// [User.Public] when the record leaves the service.
type User struct {
	// ID is the auto-incremented primary key.
	ID int64 `json:"id"`

	// Name is the display name of the user. Must be non-empty.
	Name string `json:"name"`

	// Email is the unique login identifier. Must be non-empty.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password, nil when the
	// account was created without one.
	PasswordHash *string `json:"-"`

	// CreatedAt is assigned by the database and never changes afterwards.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasPassword reports whether the account carries a password hash.
func (u User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// Public returns the externally visible view of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUser is the user representation returned by the API. It has no
// password field at all, so a hash cannot leak through serialization.
type PublicUser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// PublicUsers maps a slice of users to their public views.
func PublicUsers(users []User) []PublicUser {
	public := make([]PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public
}

// UserUpdate describes a partial update of a user. Only non-nil fields are
// written. Password holds the plain-text value on input to the service and
// the bcrypt hash once it reaches the repository.
type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// IsEmpty reports whether no field is set.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Password == nil
}
