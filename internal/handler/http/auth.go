package http

import (
	"net/http"

	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/MKhiriev/rewards-backend/internal/utils"
	"github.com/MKhiriev/rewards-backend/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", result.User.ID).Msg("user registered")
	utils.WriteJSON(w, models.AuthResponse{OK: true, AuthResult: result}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", result.User.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.AuthResponse{OK: true, AuthResult: result}, http.StatusOK)
}
