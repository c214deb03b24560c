package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/audiovibe/audiovibe/internal/domain"
)

type recommendationRequest struct {
	UserID      int64 `json:"user_id"`
	Preferences *struct {
		Genres   []string `json:"genres"`
		Duration string   `json:"duration"`
	} `json:"preferences"`
}

// POST /api/recommendations
//
// Preferences may ride along in the body (one-shot scoring, e.g. straight
// from the onboarding wizard); otherwise the user's stored preferences are
// used and results may come from cache.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Invalid JSON body")
		return
	}
	if req.UserID <= 0 {
		req.UserID = defaultUserID
	}

	var prefs *domain.Preferences
	if req.Preferences != nil {
		p := preferencesRequest{Genres: req.Preferences.Genres, Duration: req.Preferences.Duration}
		if msg, ok := p.validate(); !ok {
			writeError(w, http.StatusBadRequest, "invalid_parameter", msg)
			return
		}
		prefs = &domain.Preferences{
			UserID:   req.UserID,
			Genres:   req.Preferences.Genres,
			Duration: req.Preferences.Duration,
		}
	}

	result, err := h.service.Recommend(r.Context(), req.UserID, prefs)
	if err != nil {
		if errors.Is(err, domain.ErrPreferencesNotFound) {
			writeError(w, http.StatusNotFound, "preferences_not_found",
				"Complete onboarding or supply preferences in the request body")
			return
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			writeError(w, http.StatusServiceUnavailable, "request_timeout",
				"Request timed out, please try again")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to generate recommendations")
		return
	}

	writeJSON(w, http.StatusOK, RecommendationResponse{
		UserID:          req.UserID,
		Recommendations: result.Recommendations,
		Metadata: domain.RecommendationMeta{
			CacheHit:    result.CacheHit,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			TotalCount:  len(result.Recommendations),
		},
	})
}
