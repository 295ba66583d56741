package models

import "time"

// AuthResult is returned by registration and login.
type AuthResult struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

// Stats aggregates dashboard counters.
type Stats struct {
	UsersCount int64 `json:"users_count"`
}

// DatabaseTime is the result of the database round-trip check.
type DatabaseTime struct {
	Now time.Time `json:"now"`
}

// AppStatus is the liveness payload of the root endpoint.
type AppStatus struct {
	Message     string `json:"message"`
	Version     string `json:"version"`
	Environment string `json:"environment,omitempty"`
	Uptime      string `json:"uptime"`
}
