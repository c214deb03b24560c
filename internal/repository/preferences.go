package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/audiovibe/audiovibe/internal/domain"
	"github.com/jackc/pgx/v5"
)

func (r *Postgres) Preferences(ctx context.Context, userID int64) (domain.Preferences, error) {
	p := domain.Preferences{UserID: userID}

	err := r.pool.QueryRow(ctx,
		`SELECT genres, duration, completed_onboarding
		FROM user_preferences WHERE user_id = $1`,
		userID,
	).Scan(&p.Genres, &p.Duration, &p.CompletedOnboarding)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Preferences{}, domain.ErrPreferencesNotFound
		}
		return domain.Preferences{}, fmt.Errorf("query preferences for user %d: %w", userID, err)
	}
	return p, nil
}

// SavePreferences replaces any previous onboarding answers for the user.
func (r *Postgres) SavePreferences(ctx context.Context, p domain.Preferences) (domain.Preferences, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_preferences (user_id, genres, duration, completed_onboarding)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
			SET genres = EXCLUDED.genres,
				duration = EXCLUDED.duration,
				completed_onboarding = EXCLUDED.completed_onboarding`,
		p.UserID, p.Genres, p.Duration, p.CompletedOnboarding,
	)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("save preferences for user %d: %w", p.UserID, err)
	}
	return p, nil
}
