package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/audiovibe/audiovibe/internal/domain"
)

// Memory is a mutex-guarded in-memory Store used for local runs and
// tests. IDs are assigned from an auto-increment counter; history and
// ratings keep upsert semantics per (user, content) pair.
type Memory struct {
	mu sync.RWMutex

	content       map[int64]domain.Content
	preferences   map[int64]domain.Preferences // keyed by user ID
	favorites     map[int64][]domain.Favorite  // keyed by user ID
	history       map[int64][]domain.HistoryEntry
	ratings       map[int64][]domain.Rating
	nextContentID int64
}

// NewMemory builds a store preloaded with the given catalog items.
func NewMemory(catalog []domain.Content) *Memory {
	m := &Memory{
		content:       make(map[int64]domain.Content, len(catalog)),
		preferences:   make(map[int64]domain.Preferences),
		favorites:     make(map[int64][]domain.Favorite),
		history:       make(map[int64][]domain.HistoryEntry),
		ratings:       make(map[int64][]domain.Rating),
		nextContentID: 1,
	}
	for _, c := range catalog {
		c.ID = m.nextContentID
		m.nextContentID++
		m.content[c.ID] = c
	}
	return m
}

func (m *Memory) AllContent(_ context.Context) ([]domain.Content, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]domain.Content, 0, len(m.content))
	for _, c := range m.content {
		items = append(items, c)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (m *Memory) ContentByID(_ context.Context, id int64) (domain.Content, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.content[id]
	if !ok {
		return domain.Content{}, domain.ErrContentNotFound
	}
	return c, nil
}

func (m *Memory) ContentByCategory(ctx context.Context, category string) ([]domain.Content, error) {
	all, _ := m.AllContent(ctx)
	items := make([]domain.Content, 0)
	for _, c := range all {
		if c.Category == category {
			items = append(items, c)
		}
	}
	return items, nil
}

func (m *Memory) SearchContent(ctx context.Context, query string) ([]domain.Content, error) {
	q := strings.ToLower(query)
	all, _ := m.AllContent(ctx)

	items := make([]domain.Content, 0)
	for _, c := range all {
		if matchesQuery(c, q) {
			items = append(items, c)
		}
	}
	return items, nil
}

// matchesQuery is a naive substring match over the text fields; search is
// intentionally not an index.
func matchesQuery(c domain.Content, q string) bool {
	if strings.Contains(strings.ToLower(c.Title), q) ||
		strings.Contains(strings.ToLower(c.Description), q) ||
		strings.Contains(strings.ToLower(c.Category), q) ||
		strings.Contains(strings.ToLower(c.Narrator), q) {
		return true
	}
	for _, tag := range c.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func (m *Memory) CreateContent(_ context.Context, c domain.Content) (domain.Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = m.nextContentID
	m.nextContentID++
	m.content[c.ID] = c
	return c, nil
}

func (m *Memory) Preferences(_ context.Context, userID int64) (domain.Preferences, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.preferences[userID]
	if !ok {
		return domain.Preferences{}, domain.ErrPreferencesNotFound
	}
	return p, nil
}

func (m *Memory) SavePreferences(_ context.Context, p domain.Preferences) (domain.Preferences, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.preferences[p.UserID] = p
	return p, nil
}

func (m *Memory) Favorites(_ context.Context, userID int64) ([]domain.Favorite, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	favorites := make([]domain.Favorite, len(m.favorites[userID]))
	copy(favorites, m.favorites[userID])
	return favorites, nil
}

func (m *Memory) AddFavorite(_ context.Context, userID, contentID int64) (domain.Favorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, f := range m.favorites[userID] {
		if f.ContentID == contentID {
			return f, nil
		}
	}
	f := domain.Favorite{UserID: userID, ContentID: contentID, CreatedAt: time.Now()}
	m.favorites[userID] = append(m.favorites[userID], f)
	return f, nil
}

func (m *Memory) RemoveFavorite(_ context.Context, userID, contentID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	favorites := m.favorites[userID]
	for i, f := range favorites {
		if f.ContentID == contentID {
			m.favorites[userID] = append(favorites[:i], favorites[i+1:]...)
			return nil
		}
	}
	return domain.ErrFavoriteNotFound
}

func (m *Memory) IsFavorite(_ context.Context, userID, contentID int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, f := range m.favorites[userID] {
		if f.ContentID == contentID {
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) History(_ context.Context, userID int64) ([]domain.HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]domain.HistoryEntry, len(m.history[userID]))
	copy(entries, m.history[userID])
	return entries, nil
}

func (m *Memory) UpsertProgress(_ context.Context, userID, contentID int64, progressMinutes int, completed bool) (domain.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.history[userID]
	for i, h := range entries {
		if h.ContentID == contentID {
			entries[i].ProgressMinutes = progressMinutes
			entries[i].Completed = completed
			entries[i].LastPlayedAt = time.Now()
			return entries[i], nil
		}
	}
	h := domain.HistoryEntry{
		UserID:          userID,
		ContentID:       contentID,
		ProgressMinutes: progressMinutes,
		Completed:       completed,
		LastPlayedAt:    time.Now(),
	}
	m.history[userID] = append(entries, h)
	return h, nil
}

func (m *Memory) Ratings(_ context.Context, userID int64) ([]domain.Rating, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ratings := make([]domain.Rating, len(m.ratings[userID]))
	copy(ratings, m.ratings[userID])
	return ratings, nil
}

func (m *Memory) RateContent(_ context.Context, userID, contentID int64, rating int, review string) (domain.Rating, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ratings := m.ratings[userID]
	for i, rt := range ratings {
		if rt.ContentID == contentID {
			ratings[i].Rating = rating
			ratings[i].Review = review
			return ratings[i], nil
		}
	}
	rt := domain.Rating{
		UserID:    userID,
		ContentID: contentID,
		Rating:    rating,
		Review:    review,
		CreatedAt: time.Now(),
	}
	m.ratings[userID] = append(ratings, rt)
	return rt, nil
}

func (m *Memory) AverageRating(_ context.Context, contentID int64) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sum, n := 0, 0
	for _, userRatings := range m.ratings {
		for _, rt := range userRatings {
			if rt.ContentID == contentID {
				sum += rt.Rating
				n++
			}
		}
	}
	if n == 0 {
		return 0, nil
	}
	return float64(sum) / float64(n), nil
}
