package recommend

import (
	"regexp"
	"strconv"
)

const defaultDurationMinutes = 60

var (
	hourPattern   = regexp.MustCompile(`(?i)(\d+)\s*h`)
	minutePattern = regexp.MustCompile(`(?i)(\d+)\s*m`)
	digitPattern  = regexp.MustCompile(`(\d+)`)
)

// ParseDurationMinutes converts a human-readable duration like "1h 30m",
// "45m" or "2 hours" into total minutes. Strings without an hour or minute
// marker fall back to the first bare integer; anything unparseable, or a
// zero total, falls back to 60 minutes. Never returns a value below 1.
func ParseDurationMinutes(s string) int {
	total := 0
	matchedUnit := false

	if m := hourPattern.FindStringSubmatch(s); m != nil {
		if hours, err := strconv.Atoi(m[1]); err == nil {
			total += hours * 60
			matchedUnit = true
		}
	}
	if m := minutePattern.FindStringSubmatch(s); m != nil {
		if minutes, err := strconv.Atoi(m[1]); err == nil {
			total += minutes
			matchedUnit = true
		}
	}
	if !matchedUnit {
		if m := digitPattern.FindStringSubmatch(s); m != nil {
			if minutes, err := strconv.Atoi(m[1]); err == nil {
				total = minutes
			}
		}
	}

	if total <= 0 {
		return defaultDurationMinutes
	}
	return total
}
