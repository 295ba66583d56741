package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/rewards-backend/internal/service"
	"github.com/MKhiriev/rewards-backend/internal/store"
)

type errorStatus struct {
	target error
	status int
}

// errorStatusTable is checked in order; the first match wins. Configuration
// errors come first so that a missing secret is never reported as a
// credentials problem.
var errorStatusTable = []errorStatus{
	{store.ErrDatabaseNotConfigured, http.StatusInternalServerError},
	{service.ErrJWTSecretNotConfigured, http.StatusInternalServerError},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidToken, http.StatusForbidden},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusForbidden},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},

	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrRequestBodyTooLarge, http.StatusRequestEntityTooLarge},
	{ErrInvalidIDParam, http.StatusBadRequest},
	{ErrInvalidLimitParam, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrNoFieldsToUpdate, http.StatusBadRequest},
	{service.ErrInvalidUserID, http.StatusBadRequest},
	{store.ErrNothingToUpdate, http.StatusBadRequest},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrUserNotFound, http.StatusNotFound},
	{ErrNotFound, http.StatusNotFound},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed},
	{ErrRequestTimeout, http.StatusGatewayTimeout},

	{store.ErrDatabaseUnavailable, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
	{service.ErrPasswordHashingFailed, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatusTable {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text placed in the error envelope. Bad
// requests carry the full wrapped message with the validation details; every
// other status only names the matched sentinel, so driver messages and
// connection strings never reach the client.
func messageFromError(err error, status int) string {
	if status == http.StatusBadRequest {
		return err.Error()
	}

	for _, e := range errorStatusTable {
		if errors.Is(err, e.target) {
			return e.target.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}
