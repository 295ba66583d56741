package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/rewards-backend/internal/utils"
	"github.com/MKhiriev/rewards-backend/models"
	"github.com/go-chi/chi/v5"
)

// listUsers returns users newest first. An optional ?limit= narrows the page;
// the service caps it.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, ErrInvalidLimitParam)
			return
		}
		limit = parsed
	}

	users, err := h.services.UserService.ListUsers(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UsersResponse{OK: true, Users: users}, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{OK: true, User: user}, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateUserRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{OK: true, User: user}, http.StatusOK)
}

// deleteUser answers {ok:true, deleted:id} whether or not the row existed.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeleteResponse{OK: true, Deleted: id}, http.StatusOK)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.UserService.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StatsResponse{OK: true, Stats: stats}, http.StatusOK)
}

func userIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidIDParam
	}
	return id, nil
}
