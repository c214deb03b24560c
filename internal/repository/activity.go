package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/audiovibe/audiovibe/internal/domain"
	"github.com/jackc/pgx/v5"
)

func (r *Postgres) Favorites(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, content_id, created_at
		FROM user_favorites WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query favorites for user %d: %w", userID, err)
	}
	defer rows.Close()

	var favorites []domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.UserID, &f.ContentID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over favorites: %w", err)
	}
	return favorites, nil
}

func (r *Postgres) AddFavorite(ctx context.Context, userID, contentID int64) (domain.Favorite, error) {
	var f domain.Favorite
	err := r.pool.QueryRow(ctx,
		`INSERT INTO user_favorites (user_id, content_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, content_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING user_id, content_id, created_at`,
		userID, contentID,
	).Scan(&f.UserID, &f.ContentID, &f.CreatedAt)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("add favorite user=%d content=%d: %w", userID, contentID, err)
	}
	return f, nil
}

func (r *Postgres) RemoveFavorite(ctx context.Context, userID, contentID int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM user_favorites WHERE user_id = $1 AND content_id = $2`,
		userID, contentID,
	)
	if err != nil {
		return fmt.Errorf("remove favorite user=%d content=%d: %w", userID, contentID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

func (r *Postgres) IsFavorite(ctx context.Context, userID, contentID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM user_favorites WHERE user_id = $1 AND content_id = $2
		)`,
		userID, contentID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check favorite user=%d content=%d: %w", userID, contentID, err)
	}
	return exists, nil
}

func (r *Postgres) History(ctx context.Context, userID int64) ([]domain.HistoryEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, content_id, progress_minutes, completed, last_played_at
		FROM listening_history WHERE user_id = $1
		ORDER BY last_played_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query history for user %d: %w", userID, err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var h domain.HistoryEntry
		if err := rows.Scan(&h.UserID, &h.ContentID, &h.ProgressMinutes, &h.Completed, &h.LastPlayedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over history: %w", err)
	}
	return entries, nil
}

// UpsertProgress keeps one row per (user, content) pair; a new progress
// report overwrites the previous one.
func (r *Postgres) UpsertProgress(ctx context.Context, userID, contentID int64, progressMinutes int, completed bool) (domain.HistoryEntry, error) {
	var h domain.HistoryEntry
	err := r.pool.QueryRow(ctx,
		`INSERT INTO listening_history (user_id, content_id, progress_minutes, completed, last_played_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id, content_id) DO UPDATE
			SET progress_minutes = EXCLUDED.progress_minutes,
				completed = EXCLUDED.completed,
				last_played_at = now()
		RETURNING user_id, content_id, progress_minutes, completed, last_played_at`,
		userID, contentID, progressMinutes, completed,
	).Scan(&h.UserID, &h.ContentID, &h.ProgressMinutes, &h.Completed, &h.LastPlayedAt)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("upsert progress user=%d content=%d: %w", userID, contentID, err)
	}
	return h, nil
}

func (r *Postgres) Ratings(ctx context.Context, userID int64) ([]domain.Rating, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, content_id, rating, COALESCE(review, ''), created_at
		FROM user_ratings WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query ratings for user %d: %w", userID, err)
	}
	defer rows.Close()

	var ratings []domain.Rating
	for rows.Next() {
		var rt domain.Rating
		if err := rows.Scan(&rt.UserID, &rt.ContentID, &rt.Rating, &rt.Review, &rt.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over ratings: %w", err)
	}
	return ratings, nil
}

func (r *Postgres) RateContent(ctx context.Context, userID, contentID int64, rating int, review string) (domain.Rating, error) {
	var rt domain.Rating
	err := r.pool.QueryRow(ctx,
		`INSERT INTO user_ratings (user_id, content_id, rating, review)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		ON CONFLICT (user_id, content_id) DO UPDATE
			SET rating = EXCLUDED.rating,
				review = EXCLUDED.review
		RETURNING user_id, content_id, rating, COALESCE(review, ''), created_at`,
		userID, contentID, rating, review,
	).Scan(&rt.UserID, &rt.ContentID, &rt.Rating, &rt.Review, &rt.CreatedAt)
	if err != nil {
		return domain.Rating{}, fmt.Errorf("rate content user=%d content=%d: %w", userID, contentID, err)
	}
	return rt, nil
}

// AverageRating averages user-submitted stars for one content item,
// returning 0 when nobody has rated it.
func (r *Postgres) AverageRating(ctx context.Context, contentID int64) (float64, error) {
	var avg float64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(AVG(rating), 0) FROM user_ratings WHERE content_id = $1`,
		contentID,
	).Scan(&avg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("average rating for content %d: %w", contentID, err)
	}
	return avg, nil
}
