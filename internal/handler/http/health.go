package http

import (
	"net/http"

	"github.com/MKhiriev/rewards-backend/internal/utils"
	"github.com/MKhiriev/rewards-backend/models"
	"github.com/goccy/go-json"
)

const schemaReadyMessage = "users and settings tables are ready"

func (h *Handler) testDB(w http.ResponseWriter, r *http.Request) {
	dbTime, err := h.services.HealthService.DatabaseTime(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DatabaseTimeResponse{OK: true, Time: dbTime}, http.StatusOK)
}

// initDB creates the missing tables. It is safe to call repeatedly.
func (h *Handler) initDB(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.InitDatabase(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{OK: true, Message: schemaReadyMessage}, http.StatusOK)
}

// ping echoes the decoded JSON body back; an empty body echoes null.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var received any
	if len(body) > 0 {
		if err = json.Unmarshal(body, &received); err != nil {
			writeError(w, r, ErrInvalidJSON)
			return
		}
	}

	utils.WriteJSON(w, models.PingResponse{OK: true, Received: received}, http.StatusOK)
}
