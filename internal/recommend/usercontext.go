package recommend

import "github.com/audiovibe/audiovibe/internal/domain"

// userContext holds the per-user signals precomputed once per scoring run
// and shared by every factor scorer.
type userContext struct {
	explicitGenres      map[string]bool
	durationPref        string
	favoriteIDs         map[int64]bool
	historyIDs          map[int64]bool
	favoriteItems       []domain.Content
	preferredCategories map[string]bool
	avgSessionMinutes   float64 // 0 when history carries no usable progress
	ratingCount         int
}

func buildUserContext(in Input, byID map[int64]domain.Content) *userContext {
	uc := &userContext{
		explicitGenres: make(map[string]bool, len(in.Preferences.Genres)),
		durationPref:   in.Preferences.Duration,
		favoriteIDs:    make(map[int64]bool, len(in.Favorites)),
		historyIDs:     make(map[int64]bool, len(in.History)),
		ratingCount:    len(in.Ratings),
	}
	for _, g := range in.Preferences.Genres {
		uc.explicitGenres[g] = true
	}
	for _, f := range in.Favorites {
		uc.favoriteIDs[f.ContentID] = true
		if c, ok := byID[f.ContentID]; ok {
			uc.favoriteItems = append(uc.favoriteItems, c)
		}
	}
	for _, h := range in.History {
		uc.historyIDs[h.ContentID] = true
	}
	uc.preferredCategories = derivePreferredCategories(in.Favorites, in.Ratings, byID)
	uc.avgSessionMinutes = analyzeListeningPattern(in.History)
	return uc
}

// analyzeListeningPattern returns the user's average session length in
// minutes, or 0 when no history entry has positive progress.
func analyzeListeningPattern(history []domain.HistoryEntry) float64 {
	total, n := 0, 0
	for _, h := range history {
		if h.ProgressMinutes > 0 {
			total += h.ProgressMinutes
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}

// derivePreferredCategories infers implicit genre affinities from the
// categories of favorited items and items the user rated 4 stars or more.
// These are distinct from the explicit onboarding genres.
func derivePreferredCategories(favorites []domain.Favorite, ratings []domain.Rating, byID map[int64]domain.Content) map[string]bool {
	prefs := make(map[string]bool)
	for _, f := range favorites {
		if c, ok := byID[f.ContentID]; ok {
			prefs[c.Category] = true
		}
	}
	for _, r := range ratings {
		if r.Rating < 4 {
			continue
		}
		if c, ok := byID[r.ContentID]; ok {
			prefs[c.Category] = true
		}
	}
	return prefs
}
