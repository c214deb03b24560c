package handler

import "github.com/audiovibe/audiovibe/internal/domain"

type RecommendationResponse struct {
	UserID          int64                     `json:"user_id"`
	Recommendations []domain.Recommendation   `json:"recommendations"`
	Metadata        domain.RecommendationMeta `json:"metadata"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
