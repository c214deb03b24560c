package handler

import (
	"errors"
	"net/http"

	"github.com/audiovibe/audiovibe/internal/domain"
)

type rateRequest struct {
	UserID    int64  `json:"user_id"`
	ContentID int64  `json:"content_id"`
	Rating    int    `json:"rating"`
	Review    string `json:"review"`
}

// POST /api/rate
func (h *Handler) RateContent(w http.ResponseWriter, r *http.Request) {
	var req rateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Invalid JSON body")
		return
	}
	if req.UserID <= 0 || req.ContentID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "user_id and content_id are required")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Rating must be between 1 and 5")
		return
	}

	rating, err := h.service.RateContent(r.Context(), req.UserID, req.ContentID, req.Rating, req.Review)
	if err != nil {
		if errors.Is(err, domain.ErrContentNotFound) {
			writeError(w, http.StatusNotFound, "content_not_found", "Content does not exist")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to rate content")
		return
	}
	writeJSON(w, http.StatusOK, rating)
}
