package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/audiovibe/audiovibe/internal/domain"
	"github.com/go-chi/chi/v5"
)

// defaultUserID backs requests that omit a user id; the app onboards a
// single demo user.
const defaultUserID = 1

type preferencesRequest struct {
	UserID              int64    `json:"user_id"`
	Genres              []string `json:"genres"`
	Duration            string   `json:"duration"`
	CompletedOnboarding bool     `json:"completed_onboarding"`
}

func (p preferencesRequest) validate() (string, bool) {
	if len(p.Genres) == 0 {
		return "At least one genre is required", false
	}
	for _, g := range p.Genres {
		if !domain.IsValidCategory(g) {
			return "Unknown genre: " + g, false
		}
	}
	if !domain.IsValidDuration(p.Duration) {
		return "Duration must be short, medium or long", false
	}
	return "", true
}

// POST /api/preferences
func (h *Handler) SavePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Invalid JSON body")
		return
	}
	if msg, ok := req.validate(); !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", msg)
		return
	}
	if req.UserID <= 0 {
		req.UserID = defaultUserID
	}

	saved, err := h.service.SavePreferences(r.Context(), domain.Preferences{
		UserID:              req.UserID,
		Genres:              req.Genres,
		Duration:            req.Duration,
		CompletedOnboarding: req.CompletedOnboarding,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to save preferences")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// GET /api/preferences/{userID}
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user id")
		return
	}

	prefs, err := h.service.Preferences(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrPreferencesNotFound) {
			writeError(w, http.StatusNotFound, "preferences_not_found", "User has not completed onboarding")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch preferences")
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}
