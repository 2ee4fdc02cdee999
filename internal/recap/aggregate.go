package recap

import (
	"math"
	"sort"

	"github.com/strideworks/recap/internal/activities"
)

// AggregateByDay groups raw activities into per-day records, sorted by
// date ascending: activity count, summed distance, summed duration rounded
// to whole minutes, and the deduplicated set of activity types present.
// Effort metric and score are left unresolved.
func AggregateByDay(items []activities.Activity) []DayRecord {
	type dayTotals struct {
		count           int
		distance        float64
		durationSeconds float64
		types           map[string]struct{}
	}

	totalsByKey := make(map[string]*dayTotals)
	for _, activity := range items {
		key := DayKey(activity.StartedAt)
		totals, ok := totalsByKey[key]
		if !ok {
			totals = &dayTotals{types: make(map[string]struct{})}
			totalsByKey[key] = totals
		}

		totals.count++
		totals.distance += sanitize(activity.Distance)
		totals.durationSeconds += sanitize(float64(activity.DurationSeconds))
		if activity.Type != "" {
			totals.types[activity.Type] = struct{}{}
		}
	}

	keys := make([]string, 0, len(totalsByKey))
	for key := range totalsByKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	records := make([]DayRecord, 0, len(keys))
	for _, key := range keys {
		date, err := parseDayKey(key)
		if err != nil {
			// cannot happen for keys we formatted ourselves
			continue
		}

		totals := totalsByKey[key]
		types := make([]string, 0, len(totals.types))
		for label := range totals.types {
			types = append(types, label)
		}
		sort.Strings(types)

		records = append(records, DayRecord{
			Date:                 date,
			ActivityCount:        totals.count,
			TotalDurationMinutes: math.Round(totals.durationSeconds / 60),
			TotalDistance:        totals.distance,
			ActivityTypes:        types,
			EffortScore:          UnresolvedEffortScore,
		})
	}

	return records
}
