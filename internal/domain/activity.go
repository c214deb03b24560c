package domain

import "time"

type Favorite struct {
	UserID    int64     `json:"user_id"`
	ContentID int64     `json:"content_id"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryEntry records listening progress. At most one entry exists per
// (user, content) pair; progress updates overwrite in place.
type HistoryEntry struct {
	UserID          int64     `json:"user_id"`
	ContentID       int64     `json:"content_id"`
	ProgressMinutes int       `json:"progress_minutes"`
	Completed       bool      `json:"completed"`
	LastPlayedAt    time.Time `json:"last_played_at"`
}

// Rating is a 1-5 star rating. At most one exists per (user, content) pair;
// a later rating overwrites.
type Rating struct {
	UserID    int64     `json:"user_id"`
	ContentID int64     `json:"content_id"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
