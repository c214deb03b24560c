package recommend

import (
	"math"
	"strings"

	"github.com/audiovibe/audiovibe/internal/domain"
)

// Factor weights, summing to 100.
const (
	weightGenre      = 35.0
	weightDuration   = 25.0
	weightQuality    = 20.0
	weightSimilarity = 15.0
	weightDiscovery  = 5.0
)

const (
	favoritePenalty = -50.0
	historyPenalty  = -25.0
)

// penalty returns the signed adjustment for content the user has already
// interacted with. Both penalties apply independently: an item that is
// favorited and in history takes -75 before clamping.
func penalty(item domain.Content, uc *userContext) float64 {
	p := 0.0
	if uc.favoriteIDs[item.ID] {
		p += favoritePenalty
	}
	if uc.historyIDs[item.ID] {
		p += historyPenalty
	}
	return p
}

// scoreItem runs the five factor scorers plus penalties for a single
// candidate. A panic or NaN while scoring degrades this one item to a
// minimal candidate instead of aborting the batch.
func scoreItem(item domain.Content, uc *userContext, pop *populations) (cand domain.Recommendation) {
	defer func() {
		if r := recover(); r != nil {
			cand = degradedCandidate(item)
		}
	}()

	genre := scoreGenre(item, uc)
	duration := scoreDuration(item, uc)
	quality := scoreQuality(item, pop)
	similarity := scoreSimilarity(item, uc)
	discovery := scoreDiscovery(item, uc)

	score := weightGenre*genre.Score +
		weightDuration*duration.Score +
		weightQuality*quality.Score +
		weightSimilarity*similarity.Score +
		weightDiscovery*discovery.Score +
		penalty(item, uc)
	score = clamp(score, 0, 100)

	// Discovery is a deliberate long-shot signal, so it stays out of the
	// confidence average.
	confidence := (genre.Confidence + duration.Confidence + quality.Confidence + similarity.Confidence) / 4

	if math.IsNaN(score) || math.IsNaN(confidence) {
		return degradedCandidate(item)
	}

	recType := classify(item, uc)
	reason := selectReason([]string{genre.Reason, duration.Reason, quality.Reason, similarity.Reason, discovery.Reason}, recType)

	return domain.Recommendation{
		ContentID:          item.ID,
		Content:            item,
		Score:              round2(score),
		Confidence:         round2(confidence),
		RecommendationType: recType,
		Reason:             reason,
		MatchDetails: domain.MatchDetails{
			GenreMatch:      genre.Score,
			DurationMatch:   duration.Score,
			QualityScore:    quality.Score,
			SimilarityScore: similarity.Score,
			DiscoveryScore:  discovery.Score,
		},
	}
}

// classify picks the recommendation type, first branch wins.
func classify(item domain.Content, uc *userContext) string {
	switch {
	case uc.explicitGenres[item.Category]:
		return domain.TypePerfectMatch
	case uc.preferredCategories[item.Category]:
		return domain.TypeBasedOnHistory
	case parseRating(item.Rating) >= 4.5:
		return domain.TypeHighlyRated
	default:
		return domain.TypeDiscovery
	}
}

// reasonMarkers is the priority order used to pick one reason when several
// scorers produced one.
var reasonMarkers = []string{
	"Perfect match",
	"Similar to",
	"Ideal",
	"Exceptional",
	"Popular choice",
	"you've enjoyed",
	"Based on",
	"Discover",
	"Fresh",
}

var fallbackReasons = map[string]string{
	domain.TypePerfectMatch:   "Perfect match for your preferences",
	domain.TypeBasedOnHistory: "Based on what you've been listening to",
	domain.TypeHighlyRated:    "Highly rated by other listeners",
	domain.TypeDiscovery:      "Something different to discover",
}

func selectReason(reasons []string, recType string) string {
	var candidates []string
	for _, r := range reasons {
		if r != "" {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return fallbackReasons[recType]
	}
	for _, marker := range reasonMarkers {
		for _, r := range candidates {
			if strings.Contains(r, marker) {
				return r
			}
		}
	}
	return candidates[0]
}

func degradedCandidate(item domain.Content) domain.Recommendation {
	return domain.Recommendation{
		ContentID:          item.ID,
		Content:            item,
		Score:              25,
		Confidence:         30,
		RecommendationType: domain.TypeDiscovery,
		Reason:             "Recommended for you",
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
