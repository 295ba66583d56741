// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_IsIdempotentCreate(t *testing.T) {
	stmt := Users()

	assert.True(t, strings.HasPrefix(stmt, "CREATE TABLE IF NOT EXISTS users"))
	for _, col := range []string{"id", "name", "email", "password_hash", "created_at"} {
		assert.Contains(t, stmt, col)
	}
	assert.Contains(t, stmt, "UNIQUE", "email must be unique")
	assert.Contains(t, stmt, "DEFAULT NOW()", "created_at is assigned by the database")
}

func TestSettings_IsIdempotentCreate(t *testing.T) {
	stmt := Settings()

	assert.True(t, strings.HasPrefix(stmt, "CREATE TABLE IF NOT EXISTS settings"))
	assert.Contains(t, stmt, "key")
	assert.Contains(t, stmt, "PRIMARY KEY")
}

func TestStatement_Unknown(t *testing.T) {
	_, err := Statement("orders")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orders")
}

func TestStatement_SingleStatement(t *testing.T) {
	for _, name := range []string{"users", "settings"} {
		stmt, err := Statement(name)
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(stmt, ";"), "%s must hold exactly one statement", name)
	}
}
