package recommend

import (
	"math"
	"sort"

	"github.com/audiovibe/audiovibe/internal/domain"
)

const (
	minQualifyingScore = 15.0
	tieBreakWindow     = 5.0
	diversityPoolSize  = 8
	maxPoolCategories  = 4
	maxPerType         = 2
	finalListSize      = 6
)

// SelectDiverse filters, sorts and trims scored candidates down to the
// final list of at most 6 entries, balancing raw score against category
// and recommendation-type spread.
func SelectDiverse(candidates []domain.Recommendation) []domain.Recommendation {
	qualified := make([]domain.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		if c.Score > minQualifyingScore {
			qualified = append(qualified, c)
		}
	}

	// Score descending; confidence breaks near-ties within 5 points.
	sort.SliceStable(qualified, func(i, j int) bool {
		a, b := qualified[i], qualified[j]
		if math.Abs(a.Score-b.Score) < tieBreakWindow {
			return a.Confidence > b.Confidence
		}
		return a.Score > b.Score
	})

	pool := make([]domain.Recommendation, 0, diversityPoolSize)
	seenCategories := make(map[string]bool)
	typeCounts := make(map[string]int)
	inPool := make(map[int64]bool)

	// Greedy diversity pass: admit new categories up to a cap of 4, and
	// let each recommendation type through at most twice.
	for _, c := range qualified {
		if len(pool) >= diversityPoolSize {
			break
		}
		freshCategory := !seenCategories[c.Content.Category] && len(seenCategories) < maxPoolCategories
		underTypeCap := typeCounts[c.RecommendationType] < maxPerType
		if !freshCategory && !underTypeCap {
			continue
		}
		pool = append(pool, c)
		seenCategories[c.Content.Category] = true
		typeCounts[c.RecommendationType]++
		inPool[c.ContentID] = true
	}

	// Backfill from the remaining candidates, best score first.
	for _, c := range qualified {
		if len(pool) >= diversityPoolSize {
			break
		}
		if inPool[c.ContentID] {
			continue
		}
		pool = append(pool, c)
		inPool[c.ContentID] = true
	}

	if len(pool) > finalListSize {
		pool = pool[:finalListSize]
	}
	return pool
}
