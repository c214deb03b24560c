package router

import (
	"net/http"
	"time"

	"github.com/audiovibe/audiovibe/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func Setup(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/content", h.ListContent)
		r.Get("/content/search", h.SearchContent)
		r.Get("/content/category/{category}", h.ContentByCategory)
		r.Get("/content/{id}/rating", h.ContentRating)

		r.Post("/preferences", h.SavePreferences)
		r.Get("/preferences/{userID}", h.GetPreferences)

		r.Post("/recommendations", h.Recommend)

		r.Get("/favorites/{userID}", h.GetFavorites)
		r.Post("/favorites", h.AddFavorite)
		r.Delete("/favorites", h.RemoveFavorite)

		r.Get("/history/{userID}", h.GetHistory)
		r.Post("/progress", h.UpdateProgress)

		r.Post("/rate", h.RateContent)
	})
	r.Get("/health", healthCheck)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
