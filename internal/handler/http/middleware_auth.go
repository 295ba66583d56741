package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/MKhiriev/rewards-backend/internal/service"
	"github.com/MKhiriev/rewards-backend/internal/utils"
	"github.com/MKhiriev/rewards-backend/models"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// A request without an "Authorization" header, or with a header that is not
// of the form "Bearer <token>", is rejected with 401. A token that is present
// but fails verification is rejected with 403. On success the verified
// [models.Identity] is stored in the request context, see
// [utils.GetIdentityFromContext].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			if errors.Is(err, service.ErrJWTSecretNotConfigured) {
				writeError(w, r, err)
				return
			}
			log.Debug().Err(err).Msg("bearer token rejected")
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidToken, err))
			return
		}

		ctx := utils.WithIdentity(r.Context(), models.Identity{UserID: token.UserID, Email: token.Email})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authIf applies auth only when enabled is true.
func (h *Handler) authIf(enabled bool) func(http.Handler) http.Handler {
	if enabled {
		return h.auth
	}
	return func(next http.Handler) http.Handler { return next }
}
