package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiovibe/audiovibe/internal/domain"
)

func testStore(t *testing.T) *Memory {
	t.Helper()
	return NewMemory([]domain.Content{
		{Title: "The Midnight Library", Description: "A library between life and death", Category: "fantasy", Duration: "4h 32m", Rating: "4.8", Narrator: "Emma Thompson", Tags: []string{"magical realism"}},
		{Title: "Project Hail Mary", Description: "A lone astronaut saves humanity", Category: "sci-fi", Duration: "8h 10m", Rating: "4.9"},
		{Title: "The Paris Apartment", Description: "A locked-door mystery", Category: "mystery", Duration: "6h 5m", Rating: "4.2"},
	})
}

func TestMemoryContentIDsAssignedInOrder(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	items, err := store.AllContent(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, c := range items {
		assert.Equal(t, int64(i+1), c.ID)
	}

	created, err := store.CreateContent(ctx, domain.Content{Title: "New Release", Category: "drama"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)
}

func TestMemoryContentByID(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	c, err := store.ContentByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Project Hail Mary", c.Title)

	_, err = store.ContentByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrContentNotFound)
}

func TestMemoryContentByCategory(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	items, err := store.ContentByCategory(ctx, "mystery")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "The Paris Apartment", items[0].Title)

	empty, err := store.ContentByCategory(ctx, "historical")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemorySearchContent(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title match", "hail mary", []string{"Project Hail Mary"}},
		{"case insensitive", "MIDNIGHT", []string{"The Midnight Library"}},
		{"description match", "locked-door", []string{"The Paris Apartment"}},
		{"narrator match", "thompson", []string{"The Midnight Library"}},
		{"tag match", "magical", []string{"The Midnight Library"}},
		{"no match", "cooking", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items, err := store.SearchContent(ctx, tc.query)
			require.NoError(t, err)
			titles := make([]string, 0, len(items))
			for _, c := range items {
				titles = append(titles, c.Title)
			}
			if tc.want == nil {
				assert.Empty(t, titles)
				return
			}
			assert.Equal(t, tc.want, titles)
		})
	}
}

func TestMemoryPreferencesRoundTrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	_, err := store.Preferences(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrPreferencesNotFound)

	saved, err := store.SavePreferences(ctx, domain.Preferences{
		UserID:   1,
		Genres:   []string{"sci-fi", "fantasy"},
		Duration: domain.DurationLong,
	})
	require.NoError(t, err)

	got, err := store.Preferences(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	// Saving again replaces the previous row.
	_, err = store.SavePreferences(ctx, domain.Preferences{
		UserID:   1,
		Genres:   []string{"mystery"},
		Duration: domain.DurationShort,
	})
	require.NoError(t, err)

	got, err = store.Preferences(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"mystery"}, got.Genres)
	assert.Equal(t, domain.DurationShort, got.Duration)
}

func TestMemoryFavorites(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	_, err := store.AddFavorite(ctx, 1, 2)
	require.NoError(t, err)

	// Adding the same favorite twice does not duplicate it.
	_, err = store.AddFavorite(ctx, 1, 2)
	require.NoError(t, err)

	favorites, err := store.Favorites(ctx, 1)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, int64(2), favorites[0].ContentID)

	ok, err := store.IsFavorite(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.RemoveFavorite(ctx, 1, 2))

	ok, err = store.IsFavorite(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, store.RemoveFavorite(ctx, 1, 2), domain.ErrFavoriteNotFound)
}

func TestMemoryFavoritesAreScopedPerUser(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	_, err := store.AddFavorite(ctx, 1, 1)
	require.NoError(t, err)

	other, err := store.Favorites(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMemoryUpsertProgress(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	first, err := store.UpsertProgress(ctx, 1, 3, 20, false)
	require.NoError(t, err)
	assert.Equal(t, 20, first.ProgressMinutes)
	assert.False(t, first.Completed)

	// A second write for the same content updates in place.
	updated, err := store.UpsertProgress(ctx, 1, 3, 365, true)
	require.NoError(t, err)
	assert.Equal(t, 365, updated.ProgressMinutes)
	assert.True(t, updated.Completed)

	entries, err := store.History(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 365, entries[0].ProgressMinutes)
}

func TestMemoryRatings(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	avg, err := store.AverageRating(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)

	_, err = store.RateContent(ctx, 1, 1, 5, "loved it")
	require.NoError(t, err)
	_, err = store.RateContent(ctx, 2, 1, 3, "")
	require.NoError(t, err)

	avg, err = store.AverageRating(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, avg)

	// Re-rating overwrites the user's existing rating.
	_, err = store.RateContent(ctx, 2, 1, 4, "better on a second listen")
	require.NoError(t, err)

	avg, err = store.AverageRating(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.5, avg)

	ratings, err := store.Ratings(ctx, 2)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, 4, ratings[0].Rating)
	assert.Equal(t, "better on a second listen", ratings[0].Review)
}
