// Package repository provides the storage abstraction behind the catalog
// and user-activity reads the recommendation pipeline depends on, with an
// in-memory implementation for local runs and a Postgres implementation
// for real deployments.
package repository

import (
	"context"

	"github.com/audiovibe/audiovibe/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the read/write contract shared by both backends. The catalog
// reads return complete result sets; the recommendation engine relies on
// seeing the full population for percentile normalization.
type Store interface {
	AllContent(ctx context.Context) ([]domain.Content, error)
	ContentByID(ctx context.Context, id int64) (domain.Content, error)
	ContentByCategory(ctx context.Context, category string) ([]domain.Content, error)
	SearchContent(ctx context.Context, query string) ([]domain.Content, error)
	CreateContent(ctx context.Context, c domain.Content) (domain.Content, error)

	Preferences(ctx context.Context, userID int64) (domain.Preferences, error)
	SavePreferences(ctx context.Context, p domain.Preferences) (domain.Preferences, error)

	Favorites(ctx context.Context, userID int64) ([]domain.Favorite, error)
	AddFavorite(ctx context.Context, userID, contentID int64) (domain.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, contentID int64) error
	IsFavorite(ctx context.Context, userID, contentID int64) (bool, error)

	History(ctx context.Context, userID int64) ([]domain.HistoryEntry, error)
	UpsertProgress(ctx context.Context, userID, contentID int64, progressMinutes int, completed bool) (domain.HistoryEntry, error)

	Ratings(ctx context.Context, userID int64) ([]domain.Rating, error)
	RateContent(ctx context.Context, userID, contentID int64, rating int, review string) (domain.Rating, error)
	AverageRating(ctx context.Context, contentID int64) (float64, error)
}

// Postgres implements Store over a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}
