package recap

import (
	"sort"
	"time"
)

// DayKeyLayout is the canonical calendar-day key format, used for
// cross-component day identity comparison.
const DayKeyLayout = "2006-01-02"

// DayKey formats the calendar date of t as a canonical day key.
// The date is taken in t's own location, so two activities on the same
// local calendar day collapse to the same key regardless of clock time.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ActiveDayKeys reduces a collection of activity start timestamps to the
// distinct set of active calendar-day keys, sorted ascending.
// An empty input yields an empty set.
func ActiveDayKeys(timestamps []time.Time) []string {
	seen := make(map[string]struct{}, len(timestamps))
	keys := make([]string, 0, len(timestamps))
	for _, ts := range timestamps {
		key := DayKey(ts)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	// lexicographic order of YYYY-MM-DD keys is chronological order
	sort.Strings(keys)
	return keys
}

func parseDayKey(key string) (time.Time, error) {
	return time.Parse(DayKeyLayout, key)
}
