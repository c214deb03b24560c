package recommend

import (
	"testing"

	"github.com/audiovibe/audiovibe/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextFor(in Input) *userContext {
	byID := make(map[int64]domain.Content, len(in.Catalog))
	for _, c := range in.Catalog {
		byID[c.ID] = c
	}
	return buildUserContext(in, byID)
}

func TestScoreGenreTiers(t *testing.T) {
	catalog := []domain.Content{
		{ID: 1, Category: "drama", Rating: "4.8", Duration: "1h"},
	}

	t.Run("explicit genre is a perfect match", func(t *testing.T) {
		uc := contextFor(Input{
			Preferences: domain.Preferences{Genres: []string{"romance"}},
		})
		fs := scoreGenre(domain.Content{Category: "romance"}, uc)
		assert.Equal(t, 1.0, fs.Score)
		assert.Equal(t, 100.0, fs.Confidence)
		assert.Contains(t, fs.Reason, "Perfect match")
	})

	t.Run("derived category from favorites", func(t *testing.T) {
		uc := contextFor(Input{
			Preferences: domain.Preferences{Genres: []string{"sci-fi"}},
			Catalog:     catalog,
			Favorites:   []domain.Favorite{{UserID: 1, ContentID: 1}},
		})
		fs := scoreGenre(domain.Content{Category: "drama"}, uc)
		assert.Equal(t, 0.8, fs.Score)
		assert.Equal(t, 80.0, fs.Confidence)
	})

	t.Run("derived category from high rating", func(t *testing.T) {
		uc := contextFor(Input{
			Preferences: domain.Preferences{Genres: []string{"sci-fi"}},
			Catalog:     catalog,
			Ratings:     []domain.Rating{{UserID: 1, ContentID: 1, Rating: 4}},
		})
		fs := scoreGenre(domain.Content{Category: "drama"}, uc)
		assert.Equal(t, 0.8, fs.Score)
	})

	t.Run("low rating does not derive a category", func(t *testing.T) {
		uc := contextFor(Input{
			Preferences: domain.Preferences{Genres: []string{"sci-fi"}},
			Catalog:     catalog,
			Ratings:     []domain.Rating{{UserID: 1, ContentID: 1, Rating: 3}},
		})
		fs := scoreGenre(domain.Content{Category: "drama"}, uc)
		assert.Equal(t, 0.2, fs.Score)
	})

	t.Run("adjacent genre scores at 0.6", func(t *testing.T) {
		// comedy lists romance as adjacent
		uc := contextFor(Input{
			Preferences: domain.Preferences{Genres: []string{"romance"}},
		})
		fs := scoreGenre(domain.Content{Category: "comedy"}, uc)
		assert.Equal(t, 0.6, fs.Score)
		assert.Equal(t, 60.0, fs.Confidence)
	})

	t.Run("adjacency is directional", func(t *testing.T) {
		// thriller lists drama, but drama does not list thriller back
		ucDrama := contextFor(Input{
			Preferences: domain.Preferences{Genres: []string{"drama"}},
		})
		fs := scoreGenre(domain.Content{Category: "thriller"}, ucDrama)
		assert.Equal(t, 0.6, fs.Score)

		ucThriller := contextFor(Input{
			Preferences: domain.Preferences{Genres: []string{"thriller"}},
		})
		fs = scoreGenre(domain.Content{Category: "drama"}, ucThriller)
		assert.Equal(t, 0.2, fs.Score)
		assert.Equal(t, 20.0, fs.Confidence)
	})
}

func TestScoreDurationWithListeningPattern(t *testing.T) {
	uc := contextFor(Input{
		Preferences: domain.Preferences{Genres: []string{"romance"}, Duration: domain.DurationLong},
		History: []domain.HistoryEntry{
			{ContentID: 1, ProgressMinutes: 40},
			{ContentID: 2, ProgressMinutes: 50},
		},
	})
	require.Equal(t, 45.0, uc.avgSessionMinutes)

	t.Run("within 15 minutes of the average", func(t *testing.T) {
		fs := scoreDuration(domain.Content{Duration: "50m"}, uc)
		assert.Equal(t, 1.0, fs.Score)
		assert.Equal(t, 90.0, fs.Confidence)
	})

	t.Run("within 30 minutes of the average", func(t *testing.T) {
		fs := scoreDuration(domain.Content{Duration: "1h 10m"}, uc)
		assert.Equal(t, 0.8, fs.Score)
		assert.Equal(t, 70.0, fs.Confidence)
	})

	t.Run("far from the average decays with a floor", func(t *testing.T) {
		fs := scoreDuration(domain.Content{Duration: "8h"}, uc)
		assert.Equal(t, 0.3, fs.Score)
		assert.Equal(t, 40.0, fs.Confidence)
	})
}

func TestScoreDurationBands(t *testing.T) {
	shortUser := contextFor(Input{
		Preferences: domain.Preferences{Genres: []string{"romance"}, Duration: domain.DurationShort},
	})

	t.Run("at the ideal point", func(t *testing.T) {
		fs := scoreDuration(domain.Content{Duration: "15m"}, shortUser)
		assert.Equal(t, 1.0, fs.Score)
		assert.Equal(t, 80.0, fs.Confidence)
	})

	t.Run("inside the band away from ideal", func(t *testing.T) {
		fs := scoreDuration(domain.Content{Duration: "28m"}, shortUser)
		assert.InDelta(t, 1-13.0/30.0, fs.Score, 1e-9)
		assert.Equal(t, 50.0, fs.Confidence)
	})

	t.Run("outside the band", func(t *testing.T) {
		fs := scoreDuration(domain.Content{Duration: "3h"}, shortUser)
		assert.Equal(t, 0.3, fs.Score)
		assert.Equal(t, 50.0, fs.Confidence)
	})
}

func TestScoreQuality(t *testing.T) {
	catalog := []domain.Content{
		{ID: 1, Rating: "4.8", PlayCount: 1000},
		{ID: 2, Rating: "4.0", PlayCount: 500},
		{ID: 3, Rating: "3.5", PlayCount: 100},
		{ID: 4, Rating: "3.0", PlayCount: 50},
		{ID: 5, Rating: "2.5", PlayCount: 10},
	}
	pop := buildPopulations(catalog)

	t.Run("exceptional tier", func(t *testing.T) {
		fs := scoreQuality(catalog[0], pop)
		assert.Equal(t, 1.0, fs.Score)
		assert.Equal(t, 90.0, fs.Confidence)
		assert.Contains(t, fs.Reason, "Exceptional")
	})

	t.Run("popular tier", func(t *testing.T) {
		fs := scoreQuality(catalog[1], pop)
		assert.Equal(t, 75.0, fs.Confidence)
		assert.Contains(t, fs.Reason, "Popular choice")
	})

	t.Run("no reason below every tier", func(t *testing.T) {
		fs := scoreQuality(catalog[4], pop)
		assert.Empty(t, fs.Reason)
		assert.Equal(t, 60.0, fs.Confidence)
	})

	t.Run("malformed rating defaults to zero", func(t *testing.T) {
		fs := scoreQuality(domain.Content{Rating: "not-a-number", PlayCount: 10}, pop)
		assert.GreaterOrEqual(t, fs.Score, 0.0)
		assert.LessOrEqual(t, fs.Score, 1.0)
	})
}

func TestScoreSimilarity(t *testing.T) {
	fav := domain.Content{ID: 1, Title: "Family Secrets", Category: "drama", Duration: "1h", Rating: "4.7"}

	t.Run("cold start returns the neutral baseline", func(t *testing.T) {
		uc := contextFor(Input{Preferences: domain.Preferences{Genres: []string{"drama"}}})
		fs := scoreSimilarity(domain.Content{Category: "drama"}, uc)
		assert.Equal(t, 0.5, fs.Score)
		assert.Equal(t, 20.0, fs.Confidence)
		assert.Empty(t, fs.Reason)
	})

	t.Run("close match references the favorite title", func(t *testing.T) {
		uc := contextFor(Input{
			Preferences: domain.Preferences{Genres: []string{"drama"}},
			Catalog:     []domain.Content{fav},
			Favorites:   []domain.Favorite{{UserID: 1, ContentID: 1}},
		})
		candidate := domain.Content{ID: 2, Category: "drama", Duration: "1h 10m", Rating: "4.5"}
		fs := scoreSimilarity(candidate, uc)
		assert.Greater(t, fs.Score, 0.7)
		assert.Equal(t, 80.0, fs.Confidence)
		assert.Contains(t, fs.Reason, "Family Secrets")
	})

	t.Run("weak match has no reason", func(t *testing.T) {
		uc := contextFor(Input{
			Preferences: domain.Preferences{Genres: []string{"drama"}},
			Catalog:     []domain.Content{fav},
			Favorites:   []domain.Favorite{{UserID: 1, ContentID: 1}},
		})
		candidate := domain.Content{ID: 3, Category: "sci-fi", Duration: "20h", Rating: "1.0"}
		fs := scoreSimilarity(candidate, uc)
		assert.LessOrEqual(t, fs.Score, 0.5)
		assert.Equal(t, 40.0, fs.Confidence)
		assert.Empty(t, fs.Reason)
	})

	t.Run("ratings alone leave favorites loop empty", func(t *testing.T) {
		uc := contextFor(Input{
			Preferences: domain.Preferences{Genres: []string{"drama"}},
			Catalog:     []domain.Content{fav},
			Ratings:     []domain.Rating{{UserID: 1, ContentID: 1, Rating: 5}},
		})
		fs := scoreSimilarity(domain.Content{ID: 2, Category: "drama", Duration: "1h", Rating: "4.7"}, uc)
		assert.Equal(t, 0.0, fs.Score)
		assert.Equal(t, 40.0, fs.Confidence)
	})
}

func TestScoreDiscovery(t *testing.T) {
	prefs := domain.Preferences{Genres: []string{"romance"}}

	t.Run("unseen item outside explicit genres", func(t *testing.T) {
		uc := contextFor(Input{Preferences: prefs})
		fs := scoreDiscovery(domain.Content{ID: 7, Category: "mystery"}, uc)
		assert.Equal(t, 1.0, fs.Score)
		assert.Contains(t, fs.Reason, "Discover")
	})

	t.Run("unseen item inside explicit genres", func(t *testing.T) {
		uc := contextFor(Input{Preferences: prefs})
		fs := scoreDiscovery(domain.Content{ID: 7, Category: "romance"}, uc)
		assert.Equal(t, 0.8, fs.Score)
		assert.Contains(t, fs.Reason, "Fresh")
	})

	t.Run("already consumed item scores zero", func(t *testing.T) {
		uc := contextFor(Input{
			Preferences: prefs,
			History:     []domain.HistoryEntry{{UserID: 1, ContentID: 7, ProgressMinutes: 10}},
		})
		fs := scoreDiscovery(domain.Content{ID: 7, Category: "mystery"}, uc)
		assert.Equal(t, 0.0, fs.Score)
		assert.Empty(t, fs.Reason)
	})
}
