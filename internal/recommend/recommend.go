// Package recommend implements the catalog scoring and diversification
// engine: five weighted factor scorers (genre match, duration fit,
// quality/popularity, personal similarity, discovery) plus penalties for
// already-consumed content, followed by a diversity-constrained top-N
// selection. The engine is pure and synchronous; it performs no I/O and is
// safe for concurrent callers.
package recommend

import "github.com/audiovibe/audiovibe/internal/domain"

// Input carries everything one scoring run needs. All collections are
// read-only to the engine; the catalog must be complete so percentile
// normalization sees the full population.
type Input struct {
	Preferences domain.Preferences
	Catalog     []domain.Content
	Favorites   []domain.Favorite
	History     []domain.HistoryEntry
	Ratings     []domain.Rating
}

// Recommend scores every catalog item against the user's preferences and
// activity and returns the diversified list of at most 6 recommendations.
// Identical inputs produce identical output.
func Recommend(in Input) []domain.Recommendation {
	byID := make(map[int64]domain.Content, len(in.Catalog))
	for _, c := range in.Catalog {
		byID[c.ID] = c
	}

	uc := buildUserContext(in, byID)
	pop := buildPopulations(in.Catalog)

	scored := make([]domain.Recommendation, 0, len(in.Catalog))
	for _, item := range in.Catalog {
		scored = append(scored, scoreItem(item, uc, pop))
	}
	return SelectDiverse(scored)
}
