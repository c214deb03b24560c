package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/audiovibe/audiovibe/internal/domain"
	"github.com/jackc/pgx/v5"
)

const contentColumns = `id, title, description, category, duration, rating,
	thumbnail, play_count, tags, narrator, total_duration_minutes`

func (r *Postgres) AllContent(ctx context.Context) ([]domain.Content, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contentColumns+` FROM audio_content ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query all content: %w", err)
	}
	defer rows.Close()

	return scanContentRows(rows)
}

func (r *Postgres) ContentByID(ctx context.Context, id int64) (domain.Content, error) {
	var c domain.Content
	err := r.pool.QueryRow(ctx,
		`SELECT `+contentColumns+` FROM audio_content WHERE id = $1`, id,
	).Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.Duration, &c.Rating,
		&c.Thumbnail, &c.PlayCount, &c.Tags, &c.Narrator, &c.TotalDurationMinutes)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Content{}, domain.ErrContentNotFound
		}
		return domain.Content{}, fmt.Errorf("query content id=%d: %w", id, err)
	}
	return c, nil
}

func (r *Postgres) ContentByCategory(ctx context.Context, category string) ([]domain.Content, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contentColumns+` FROM audio_content WHERE category = $1 ORDER BY id`,
		category,
	)
	if err != nil {
		return nil, fmt.Errorf("query content by category %q: %w", category, err)
	}
	defer rows.Close()

	return scanContentRows(rows)
}

func (r *Postgres) SearchContent(ctx context.Context, query string) ([]domain.Content, error) {
	pattern := "%" + query + "%"
	rows, err := r.pool.Query(ctx,
		`SELECT `+contentColumns+` FROM audio_content
		WHERE title ILIKE $1
			OR description ILIKE $1
			OR category ILIKE $1
			OR narrator ILIKE $1
			OR EXISTS (SELECT 1 FROM unnest(tags) tag WHERE tag ILIKE $1)
		ORDER BY id`,
		pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("search content %q: %w", query, err)
	}
	defer rows.Close()

	return scanContentRows(rows)
}

func (r *Postgres) CreateContent(ctx context.Context, c domain.Content) (domain.Content, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO audio_content
			(title, description, category, duration, rating, thumbnail, play_count, tags, narrator, total_duration_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		c.Title, c.Description, c.Category, c.Duration, c.Rating,
		c.Thumbnail, c.PlayCount, c.Tags, c.Narrator, c.TotalDurationMinutes,
	).Scan(&c.ID)
	if err != nil {
		return domain.Content{}, fmt.Errorf("insert content: %w", err)
	}
	return c, nil
}

func scanContentRows(rows pgx.Rows) ([]domain.Content, error) {
	var items []domain.Content
	for rows.Next() {
		var c domain.Content
		err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.Duration, &c.Rating,
			&c.Thumbnail, &c.PlayCount, &c.Tags, &c.Narrator, &c.TotalDurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over content: %w", err)
	}
	return items, nil
}
