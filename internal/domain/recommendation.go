package domain

// Recommendation types, in classification priority order.
const (
	TypePerfectMatch   = "perfect_match"
	TypeBasedOnHistory = "based_on_history"
	TypeHighlyRated    = "highly_rated"
	TypeDiscovery      = "discovery"
)

// MatchDetails breaks the aggregate score down into the five factor scores,
// each normalized to [0,1].
type MatchDetails struct {
	GenreMatch      float64 `json:"genre_match"`
	DurationMatch   float64 `json:"duration_match"`
	QualityScore    float64 `json:"quality_score"`
	SimilarityScore float64 `json:"similarity_score"`
	DiscoveryScore  float64 `json:"discovery_score"`
}

type Recommendation struct {
	ContentID          int64        `json:"content_id"`
	Content            Content      `json:"content"`
	Score              float64      `json:"score"`      // 0-100, clamped
	Confidence         float64      `json:"confidence"` // 0-100, tie-break signal
	RecommendationType string       `json:"recommendation_type"`
	Reason             string       `json:"reason"`
	MatchDetails       MatchDetails `json:"match_details"`
}

type RecommendationMeta struct {
	CacheHit    bool   `json:"cache_hit"`
	GeneratedAt string `json:"generated_at"`
	TotalCount  int    `json:"total_count"`
}

type RecommendationResult struct {
	Recommendations []Recommendation
	CacheHit        bool
}
