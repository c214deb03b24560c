package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/audiovibe/audiovibe/internal/domain"
	"github.com/go-chi/chi/v5"
)

type favoriteRequest struct {
	UserID    int64 `json:"user_id"`
	ContentID int64 `json:"content_id"`
}

// GET /api/favorites/{userID}
func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user id")
		return
	}

	favorites, err := h.service.Favorites(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch favorites")
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

// POST /api/favorites
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Invalid JSON body")
		return
	}
	if req.UserID <= 0 || req.ContentID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "user_id and content_id are required")
		return
	}

	favorite, err := h.service.AddFavorite(r.Context(), req.UserID, req.ContentID)
	if err != nil {
		if errors.Is(err, domain.ErrContentNotFound) {
			writeError(w, http.StatusNotFound, "content_not_found", "Content does not exist")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to add to favorites")
		return
	}
	writeJSON(w, http.StatusOK, favorite)
}

// DELETE /api/favorites
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Invalid JSON body")
		return
	}
	if req.UserID <= 0 || req.ContentID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "user_id and content_id are required")
		return
	}

	if err := h.service.RemoveFavorite(r.Context(), req.UserID, req.ContentID); err != nil {
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			writeJSON(w, http.StatusOK, map[string]bool{"success": false})
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to remove from favorites")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
