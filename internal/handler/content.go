package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/audiovibe/audiovibe/internal/domain"
	"github.com/go-chi/chi/v5"
)

// GET /api/content
func (h *Handler) ListContent(w http.ResponseWriter, r *http.Request) {
	content, err := h.service.AllContent(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch content")
		return
	}
	writeJSON(w, http.StatusOK, content)
}

// GET /api/content/category/{category}
func (h *Handler) ContentByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if !domain.IsValidCategory(category) {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Unknown category")
		return
	}

	content, err := h.service.ContentByCategory(r.Context(), category)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch content by category")
		return
	}
	writeJSON(w, http.StatusOK, content)
}

// GET /api/content/search?q=
func (h *Handler) SearchContent(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing_query", "Search query is required")
		return
	}

	content, err := h.service.SearchContent(r.Context(), query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to search content")
		return
	}
	writeJSON(w, http.StatusOK, content)
}

// GET /api/content/{id}/rating
func (h *Handler) ContentRating(w http.ResponseWriter, r *http.Request) {
	contentID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || contentID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid content id")
		return
	}

	avg, err := h.service.AverageRating(r.Context(), contentID)
	if err != nil {
		if errors.Is(err, domain.ErrContentNotFound) {
			writeError(w, http.StatusNotFound, "content_not_found", "Content does not exist")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch rating")
		return
	}

	writeJSON(w, http.StatusOK, map[string]float64{"average_rating": avg})
}
