package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/audiovibe/audiovibe/internal/domain"
	"github.com/go-chi/chi/v5"
)

type progressRequest struct {
	UserID          int64 `json:"user_id"`
	ContentID       int64 `json:"content_id"`
	ProgressMinutes int   `json:"progress_minutes"`
	Completed       bool  `json:"completed"`
}

// GET /api/history/{userID}
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user id")
		return
	}

	history, err := h.service.History(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch listening history")
		return
	}
	writeJSON(w, http.StatusOK, history)
}

// POST /api/progress
func (h *Handler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	var req progressRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Invalid JSON body")
		return
	}
	if req.UserID <= 0 || req.ContentID <= 0 || req.ProgressMinutes < 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "user_id, content_id and a non-negative progress_minutes are required")
		return
	}

	entry, err := h.service.UpdateProgress(r.Context(), req.UserID, req.ContentID, req.ProgressMinutes, req.Completed)
	if err != nil {
		if errors.Is(err, domain.ErrContentNotFound) {
			writeError(w, http.StatusNotFound, "content_not_found", "Content does not exist")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to update progress")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
