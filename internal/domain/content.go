package domain

// Categories is the closed set of genre tags the catalog uses.
var Categories = []string{
	"romance",
	"thriller",
	"mystery",
	"comedy",
	"drama",
	"sci-fi",
	"fantasy",
	"historical",
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type Content struct {
	ID                   int64    `json:"id"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Category             string   `json:"category"`
	Duration             string   `json:"duration"` // human-readable, e.g. "4h 32m"
	Rating               string   `json:"rating"`   // decimal string, "0.0".."5.0"
	Thumbnail            string   `json:"thumbnail,omitempty"`
	PlayCount            int      `json:"play_count"`
	Tags                 []string `json:"tags,omitempty"`
	Narrator             string   `json:"narrator,omitempty"`
	TotalDurationMinutes int      `json:"total_duration_minutes,omitempty"`
}
