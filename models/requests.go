// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,bcrypt"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateUserRequest is the body of POST /users and POST /api/users.
// Password is optional: admin-inserted users may have none.
type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password *string `json:"password,omitempty" validate:"omitempty,bcrypt"`
}

// UpdateUserRequest is the body of PUT /users/{id}. Every field is optional,
// but at least one must be present and none may be blank.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitnil,min=1,max=255"`
	Email    *string `json:"email,omitempty" validate:"omitnil,email,max=255"`
	Password *string `json:"password,omitempty" validate:"omitnil,min=1,bcrypt"`
}

// ToUpdate converts the request to a repository-level partial update.
func (r UpdateUserRequest) ToUpdate() UserUpdate {
	return UserUpdate{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}
