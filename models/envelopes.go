package models

// Every response of the HTTP API is an envelope with an "ok" flag. Successful
// responses add their payload next to it; failures carry a single "error"
// string.

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// OKResponse is a bare success flag.
type OKResponse struct {
	OK bool `json:"ok"`
}

// MessageResponse is a success flag with a human-readable message.
type MessageResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// StatusResponse is the body of GET /.
type StatusResponse struct {
	OK bool `json:"ok"`
	AppStatus
}

// DatabaseTimeResponse is the body of GET /api/testdb.
type DatabaseTimeResponse struct {
	OK   bool         `json:"ok"`
	Time DatabaseTime `json:"time"`
}

// PingResponse echoes the decoded request body, null when it was empty.
type PingResponse struct {
	OK       bool `json:"ok"`
	Received any  `json:"received"`
}

type UsersResponse struct {
	OK    bool         `json:"ok"`
	Users []PublicUser `json:"users"`
}

type UserResponse struct {
	OK   bool       `json:"ok"`
	User PublicUser `json:"user"`
}

// DeleteResponse reports the id that was requested for deletion.
type DeleteResponse struct {
	OK      bool  `json:"ok"`
	Deleted int64 `json:"deleted"`
}

// AuthResponse is the body of a successful registration or login.
type AuthResponse struct {
	OK bool `json:"ok"`
	AuthResult
}

type StatsResponse struct {
	OK    bool  `json:"ok"`
	Stats Stats `json:"stats"`
}

type SettingsResponse struct {
	OK       bool      `json:"ok"`
	Settings []Setting `json:"settings"`
}
