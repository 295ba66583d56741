// Package schema holds the idempotent DDL of the rewards backend.
//
// Every statement is a single CREATE TABLE IF NOT EXISTS, so it is safe to
// run on each process start. There is no versioning: changing a table means
// editing the statement and altering existing databases by hand.
package schema

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed *.sql
var embedSchema embed.FS

const (
	usersFile    = "users.sql"
	settingsFile = "settings.sql"
)

// Users returns the statement creating the "users" table.
func Users() string {
	return mustRead(usersFile)
}

// Settings returns the statement creating the "settings" table.
func Settings() string {
	return mustRead(settingsFile)
}

// Statement returns the embedded statement stored under name (without the
// .sql suffix).
func Statement(name string) (string, error) {
	data, err := embedSchema.ReadFile(name + ".sql")
	if err != nil {
		return "", fmt.Errorf("schema %q not found: %w", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func mustRead(file string) string {
	stmt, err := Statement(strings.TrimSuffix(file, ".sql"))
	if err != nil {
		panic(err)
	}
	return stmt
}
