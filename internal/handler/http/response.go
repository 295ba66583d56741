package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/MKhiriev/rewards-backend/internal/utils"
	"github.com/MKhiriev/rewards-backend/models"
	"github.com/goccy/go-json"
)

// maxBodyBytes limits every request body.
const maxBodyBytes = 1 << 20

// writeError maps err to a status and writes the error envelope. Server-side
// failures are logged with the full error chain.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	message := messageFromError(err, status)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{OK: false, Error: message}, status)
}

// readBody reads the whole request body up to maxBodyBytes.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, ErrRequestBodyTooLarge
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return bytes.TrimSpace(body), nil
}

// decodeJSON reads the request body into dst. An empty body is rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body, err := readBody(w, r)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return fmt.Errorf("%w: empty body", ErrInvalidJSON)
	}

	if err = json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
