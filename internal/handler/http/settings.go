package http

import (
	"net/http"

	"github.com/MKhiriev/rewards-backend/internal/utils"
	"github.com/MKhiriev/rewards-backend/models"
)

func (h *Handler) listSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.SettingsService.ListSettings(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SettingsResponse{OK: true, Settings: settings}, http.StatusOK)
}

func (h *Handler) upsertSetting(w http.ResponseWriter, r *http.Request) {
	var setting models.Setting
	if err := decodeJSON(w, r, &setting); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.SettingsService.UpsertSetting(r.Context(), setting); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}
