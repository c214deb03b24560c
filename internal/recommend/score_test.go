package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/audiovibe/audiovibe/internal/domain"
)

func TestSelectReasonMarkerPriority(t *testing.T) {
	tests := []struct {
		name    string
		reasons []string
		want    string
	}{
		{
			name:    "perfect match outranks everything",
			reasons: []string{"Well-rated by the community", "Perfect match for your romance preference", "Discover something new in drama"},
			want:    "Perfect match for your romance preference",
		},
		{
			name:    "similarity outranks ideal length",
			reasons: []string{"Ideal for short listening sessions", `Similar to "Nova Station" from your favorites`},
			want:    `Similar to "Nova Station" from your favorites`,
		},
		{
			name:    "exceptional outranks popular",
			reasons: []string{"Popular choice among listeners", "Exceptional quality, loved by listeners"},
			want:    "Exceptional quality, loved by listeners",
		},
		{
			name:    "unmarked reason falls through to first",
			reasons: []string{"Well-rated by the community"},
			want:    "Well-rated by the community",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, selectReason(tc.reasons, domain.TypeDiscovery))
		})
	}
}

func TestSelectReasonFallbackPerType(t *testing.T) {
	assert.Equal(t, "Perfect match for your preferences", selectReason(nil, domain.TypePerfectMatch))
	assert.Equal(t, "Based on what you've been listening to", selectReason([]string{"", ""}, domain.TypeBasedOnHistory))
	assert.Equal(t, "Highly rated by other listeners", selectReason(nil, domain.TypeHighlyRated))
	assert.Equal(t, "Something different to discover", selectReason(nil, domain.TypeDiscovery))
}

func TestClassifyPriorityOrder(t *testing.T) {
	uc := &userContext{
		explicitGenres:      map[string]bool{"romance": true},
		preferredCategories: map[string]bool{"romance": true, "fantasy": true},
	}

	// Explicit genre wins even when the category is also derived.
	assert.Equal(t, domain.TypePerfectMatch, classify(domain.Content{Category: "romance", Rating: "4.9"}, uc))
	assert.Equal(t, domain.TypeBasedOnHistory, classify(domain.Content{Category: "fantasy", Rating: "4.9"}, uc))
	assert.Equal(t, domain.TypeHighlyRated, classify(domain.Content{Category: "mystery", Rating: "4.5"}, uc))
	assert.Equal(t, domain.TypeDiscovery, classify(domain.Content{Category: "mystery", Rating: "4.4"}, uc))
}

func TestPenaltyStacks(t *testing.T) {
	item := domain.Content{ID: 7}

	assert.Equal(t, 0.0, penalty(item, &userContext{
		favoriteIDs: map[int64]bool{},
		historyIDs:  map[int64]bool{},
	}))
	assert.Equal(t, -50.0, penalty(item, &userContext{
		favoriteIDs: map[int64]bool{7: true},
		historyIDs:  map[int64]bool{},
	}))
	assert.Equal(t, -75.0, penalty(item, &userContext{
		favoriteIDs: map[int64]bool{7: true},
		historyIDs:  map[int64]bool{7: true},
	}))
}

func TestDegradedCandidate(t *testing.T) {
	item := domain.Content{ID: 3, Title: "Café Chronicles"}
	cand := degradedCandidate(item)

	assert.Equal(t, int64(3), cand.ContentID)
	assert.Equal(t, 25.0, cand.Score)
	assert.Equal(t, 30.0, cand.Confidence)
	assert.Equal(t, domain.TypeDiscovery, cand.RecommendationType)
	assert.Equal(t, "Recommended for you", cand.Reason)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-20.5, 0, 100))
	assert.Equal(t, 100.0, clamp(104.2, 0, 100))
	assert.Equal(t, 42.0, clamp(42, 0, 100))
}
