package handler

import (
	"net/http"

	"github.com/audiovibe/audiovibe/internal/service"
	gojson "github.com/goccy/go-json"
)

type Handler struct {
	service *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{service: svc}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	gojson.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

func decodeJSON(r *http.Request, v any) error {
	return gojson.NewDecoder(r.Body).Decode(v)
}
