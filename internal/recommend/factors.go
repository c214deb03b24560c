package recommend

import (
	"fmt"
	"math"
	"strconv"

	"github.com/audiovibe/audiovibe/internal/domain"
)

// factorScore is the output of one factor scorer: a normalized score, a
// confidence used as a secondary ranking signal, and an optional
// human-readable reason.
type factorScore struct {
	Score      float64 // [0,1]
	Confidence float64 // [0,100]
	Reason     string
}

// genreSimilarity maps each category to its adjacent genres. The table is
// intentionally asymmetric for some pairs (thriller lists drama but drama
// does not list thriller back) and is kept as-is.
var genreSimilarity = map[string][]string{
	"romance":    {"drama", "comedy"},
	"thriller":   {"mystery", "drama"},
	"sci-fi":     {"fantasy", "thriller"},
	"fantasy":    {"sci-fi", "historical"},
	"drama":      {"romance", "mystery", "historical"},
	"historical": {"drama", "fantasy"},
	"comedy":     {"romance", "drama"},
	"mystery":    {"thriller", "drama"},
}

func scoreGenre(item domain.Content, uc *userContext) factorScore {
	if uc.explicitGenres[item.Category] {
		return factorScore{1.0, 100, fmt.Sprintf("Perfect match for your %s preference", item.Category)}
	}
	if uc.preferredCategories[item.Category] {
		return factorScore{0.8, 80, "Based on genres you've been enjoying"}
	}
	for _, adjacent := range genreSimilarity[item.Category] {
		if uc.explicitGenres[adjacent] {
			return factorScore{0.6, 60, fmt.Sprintf("Similar to the %s stories you like", adjacent)}
		}
	}
	return factorScore{0.2, 20, ""}
}

type durationBand struct {
	min, max, ideal float64
}

var durationBands = map[string]durationBand{
	domain.DurationShort:  {min: 0, max: 30, ideal: 15},
	domain.DurationMedium: {min: 25, max: 90, ideal: 60},
	domain.DurationLong:   {min: 60, max: 300, ideal: 120},
}

func scoreDuration(item domain.Content, uc *userContext) factorScore {
	itemMinutes := float64(contentMinutes(item))

	// Observed listening pattern beats the declared preference.
	if uc.avgSessionMinutes > 0 {
		diff := math.Abs(itemMinutes - uc.avgSessionMinutes)
		switch {
		case diff <= 15:
			return factorScore{1.0, 90, "Ideal length for your usual listening sessions"}
		case diff <= 30:
			return factorScore{0.8, 70, ""}
		default:
			return factorScore{math.Max(0.3, 1-diff/120), 40, ""}
		}
	}

	band, ok := durationBands[uc.durationPref]
	if !ok || itemMinutes < band.min || itemMinutes > band.max {
		return factorScore{0.3, 50, ""}
	}
	score := 1 - math.Abs(itemMinutes-band.ideal)/(band.max-band.min)
	if score > 0.8 {
		return factorScore{score, 80, fmt.Sprintf("Ideal for %s listening sessions", uc.durationPref)}
	}
	return factorScore{score, 50, ""}
}

// populations holds the catalog-wide numeric populations used for
// percentile normalization, built once per scoring run.
type populations struct {
	ratings    []float64
	playCounts []float64
}

func buildPopulations(catalog []domain.Content) *populations {
	pop := &populations{
		ratings:    make([]float64, 0, len(catalog)),
		playCounts: make([]float64, 0, len(catalog)),
	}
	for _, c := range catalog {
		pop.ratings = append(pop.ratings, parseRating(c.Rating))
		pop.playCounts = append(pop.playCounts, float64(c.PlayCount))
	}
	return pop
}

func scoreQuality(item domain.Content, pop *populations) factorScore {
	rating := parseRating(item.Rating)
	ratingPercentile := PercentileRank(rating, pop.ratings)
	popularityPercentile := PercentileRank(float64(item.PlayCount), pop.playCounts)
	score := (ratingPercentile + popularityPercentile) / 200

	switch {
	case rating >= 4.5 && ratingPercentile > 80:
		return factorScore{score, 90, "Exceptional quality, loved by listeners"}
	case rating >= 4.0 && popularityPercentile > 70:
		return factorScore{score, 75, "Popular choice among listeners"}
	case ratingPercentile > 60:
		return factorScore{score, 60, "Well-rated by the community"}
	default:
		return factorScore{score, 60, ""}
	}
}

func scoreSimilarity(item domain.Content, uc *userContext) factorScore {
	if len(uc.favoriteItems) == 0 && uc.ratingCount == 0 {
		return factorScore{0.5, 20, ""}
	}

	itemMinutes := float64(contentMinutes(item))
	itemRating := parseRating(item.Rating)

	best := 0.0
	bestTitle := ""
	for _, fav := range uc.favoriteItems {
		similarity := 0.0
		if fav.Category == item.Category {
			similarity += 0.4
		}
		durationDiff := math.Abs(itemMinutes - float64(contentMinutes(fav)))
		similarity += 0.3 * math.Max(0, 1-durationDiff/120)
		ratingDiff := math.Abs(itemRating - parseRating(fav.Rating))
		similarity += 0.3 * math.Max(0, 1-ratingDiff/5)

		if similarity > best {
			best = similarity
			bestTitle = fav.Title
		}
	}

	switch {
	case best > 0.7:
		return factorScore{best, 80, fmt.Sprintf("Similar to %q from your favorites", bestTitle)}
	case best > 0.5:
		return factorScore{best, 65, "Similar in style to audiobooks you've enjoyed"}
	default:
		return factorScore{best, 40, ""}
	}
}

func scoreDiscovery(item domain.Content, uc *userContext) factorScore {
	if uc.favoriteIDs[item.ID] || uc.historyIDs[item.ID] {
		return factorScore{0, 0, ""}
	}
	if !uc.explicitGenres[item.Category] {
		return factorScore{1.0, 50, fmt.Sprintf("Discover something new in %s", item.Category)}
	}
	return factorScore{0.8, 50, "Fresh content picked for you"}
}

// contentMinutes resolves an item's length, preferring the explicit minute
// count over parsing the display string.
func contentMinutes(item domain.Content) int {
	if item.TotalDurationMinutes > 0 {
		return item.TotalDurationMinutes
	}
	return ParseDurationMinutes(item.Duration)
}

// parseRating reads the catalog's decimal rating string, defaulting to 0
// when missing or malformed.
func parseRating(s string) float64 {
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return r
}
