package service

import (
	"context"
	"fmt"
	"log"

	"github.com/audiovibe/audiovibe/internal/cache"
	"github.com/audiovibe/audiovibe/internal/domain"
	"github.com/audiovibe/audiovibe/internal/recommend"
	"github.com/audiovibe/audiovibe/internal/repository"
)

type Service struct {
	store repository.Store
	cache *cache.Cache // nil when Redis is not configured
}

func NewService(store repository.Store, cache *cache.Cache) *Service {
	return &Service{
		store: store,
		cache: cache,
	}
}

// Recommend builds the personalized feed for a user. When prefs is nil the
// user's stored onboarding preferences are used and the result is served
// from / written to the cache; request-supplied preferences always rescore.
func (s *Service) Recommend(ctx context.Context, userID int64, prefs *domain.Preferences) (*domain.RecommendationResult, error) {
	useStored := prefs == nil

	if useStored {
		stored, err := s.store.Preferences(ctx, userID)
		if err != nil {
			return nil, err
		}
		prefs = &stored

		if s.cache != nil {
			cached, found, err := s.cache.Get(ctx, userID)
			if err != nil {
				log.Printf("[service] cache get error for user %d: %v", userID, err)
			}
			if found {
				return &domain.RecommendationResult{
					Recommendations: cached,
					CacheHit:        true,
				}, nil
			}
		}
	}

	recs, err := s.generateRecommendations(ctx, userID, *prefs)
	if err != nil {
		return nil, err
	}

	if useStored && s.cache != nil {
		if cacheErr := s.cache.Set(ctx, userID, recs); cacheErr != nil {
			log.Printf("[service] cache set error for user %d: %v", userID, cacheErr)
		}
	}

	return &domain.RecommendationResult{
		Recommendations: recs,
		CacheHit:        false,
	}, nil
}

func (s *Service) generateRecommendations(ctx context.Context, userID int64, prefs domain.Preferences) ([]domain.Recommendation, error) {
	catalog, err := s.store.AllContent(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	favorites, err := s.store.Favorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch favorites: %w", err)
	}
	history, err := s.store.History(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	ratings, err := s.store.Ratings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch ratings: %w", err)
	}

	scored := recommend.Recommend(recommend.Input{
		Preferences: prefs,
		Catalog:     catalog,
		Favorites:   favorites,
		History:     history,
		Ratings:     ratings,
	})

	// Drop any candidate whose content record went missing; never surface
	// a dangling reference to the client.
	recs := make([]domain.Recommendation, 0, len(scored))
	for _, rec := range scored {
		if rec.Content.ID != rec.ContentID {
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// SavePreferences stores onboarding answers and invalidates the user's
// cached feed.
func (s *Service) SavePreferences(ctx context.Context, p domain.Preferences) (domain.Preferences, error) {
	saved, err := s.store.SavePreferences(ctx, p)
	if err != nil {
		return domain.Preferences{}, err
	}
	s.invalidate(ctx, p.UserID)
	return saved, nil
}

func (s *Service) Preferences(ctx context.Context, userID int64) (domain.Preferences, error) {
	return s.store.Preferences(ctx, userID)
}

// FavoriteItem pairs a favorite with its full content record.
type FavoriteItem struct {
	domain.Favorite
	Content domain.Content `json:"content"`
}

func (s *Service) Favorites(ctx context.Context, userID int64) ([]FavoriteItem, error) {
	favorites, err := s.store.Favorites(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]FavoriteItem, 0, len(favorites))
	for _, f := range favorites {
		content, err := s.store.ContentByID(ctx, f.ContentID)
		if err != nil {
			continue
		}
		items = append(items, FavoriteItem{Favorite: f, Content: content})
	}
	return items, nil
}

func (s *Service) AddFavorite(ctx context.Context, userID, contentID int64) (domain.Favorite, error) {
	if _, err := s.store.ContentByID(ctx, contentID); err != nil {
		return domain.Favorite{}, err
	}
	f, err := s.store.AddFavorite(ctx, userID, contentID)
	if err != nil {
		return domain.Favorite{}, err
	}
	s.invalidate(ctx, userID)
	return f, nil
}

func (s *Service) RemoveFavorite(ctx context.Context, userID, contentID int64) error {
	if err := s.store.RemoveFavorite(ctx, userID, contentID); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

// HistoryItem pairs a history entry with its full content record.
type HistoryItem struct {
	domain.HistoryEntry
	Content domain.Content `json:"content"`
}

func (s *Service) History(ctx context.Context, userID int64) ([]HistoryItem, error) {
	entries, err := s.store.History(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]HistoryItem, 0, len(entries))
	for _, h := range entries {
		content, err := s.store.ContentByID(ctx, h.ContentID)
		if err != nil {
			continue
		}
		items = append(items, HistoryItem{HistoryEntry: h, Content: content})
	}
	return items, nil
}

func (s *Service) UpdateProgress(ctx context.Context, userID, contentID int64, progressMinutes int, completed bool) (domain.HistoryEntry, error) {
	if _, err := s.store.ContentByID(ctx, contentID); err != nil {
		return domain.HistoryEntry{}, err
	}
	h, err := s.store.UpsertProgress(ctx, userID, contentID, progressMinutes, completed)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	s.invalidate(ctx, userID)
	return h, nil
}

func (s *Service) RateContent(ctx context.Context, userID, contentID int64, rating int, review string) (domain.Rating, error) {
	if _, err := s.store.ContentByID(ctx, contentID); err != nil {
		return domain.Rating{}, err
	}
	r, err := s.store.RateContent(ctx, userID, contentID, rating, review)
	if err != nil {
		return domain.Rating{}, err
	}
	s.invalidate(ctx, userID)
	return r, nil
}

func (s *Service) AverageRating(ctx context.Context, contentID int64) (float64, error) {
	if _, err := s.store.ContentByID(ctx, contentID); err != nil {
		return 0, err
	}
	return s.store.AverageRating(ctx, contentID)
}

func (s *Service) AllContent(ctx context.Context) ([]domain.Content, error) {
	return s.store.AllContent(ctx)
}

func (s *Service) ContentByCategory(ctx context.Context, category string) ([]domain.Content, error) {
	return s.store.ContentByCategory(ctx, category)
}

func (s *Service) SearchContent(ctx context.Context, query string) ([]domain.Content, error) {
	return s.store.SearchContent(ctx, query)
}

func (s *Service) invalidate(ctx context.Context, userID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.ClearUser(ctx, userID); err != nil {
		log.Printf("[service] cache invalidation error for user %d: %v", userID, err)
	}
}
