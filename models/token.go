// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued at registration and login.
//
// The identity is carried in the custom "id"/"email" claims read by the
// dashboard and in the standard "sub" claim.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`

	jwt.RegisteredClaims
}

// Token wraps a JWT with the identity extracted from it.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier taken from the "id" claim.
	UserID int64 `json:"-"`

	// Email is the owner e-mail taken from the "email" claim.
	Email string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Identity is the authenticated principal that the auth middleware attaches
// to the request context.
type Identity struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
}
