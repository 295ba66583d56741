package http

import (
	"net/http"

	"github.com/MKhiriev/rewards-backend/internal/utils"
	"github.com/MKhiriev/rewards-backend/models"
)

// status is the liveness endpoint. It never touches the database.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	appStatus := h.services.AppInfoService.GetStatus(r.Context())

	utils.WriteJSON(w, models.StatusResponse{OK: true, AppStatus: appStatus}, http.StatusOK)
}
