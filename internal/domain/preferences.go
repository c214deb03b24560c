package domain

// Session length buckets a user can pick during onboarding.
const (
	DurationShort  = "short"
	DurationMedium = "medium"
	DurationLong   = "long"
)

func IsValidDuration(duration string) bool {
	switch duration {
	case DurationShort, DurationMedium, DurationLong:
		return true
	}
	return false
}

type Preferences struct {
	UserID              int64    `json:"user_id"`
	Genres              []string `json:"genres"`
	Duration            string   `json:"duration"`
	CompletedOnboarding bool     `json:"completed_onboarding"`
}
