package recap

import (
	"math"

	"github.com/strideworks/recap/internal/activities"
)

// ResolveDailyEffort decides which effort metric (distance or time) best
// represents the day's intensity, based on the style classification of the
// activity types present. Returns a new record, input is not mutated.
//
// Decision order, first matching rule wins:
//  1. any distance-style type present and distance > 0 -> distance
//  2. all present types duration-style and duration > 0 -> time
//  3. distance > 0 -> distance
//  4. duration > 0 -> time
//  5. any activity at all -> time with a nominal value of 1, so the day
//     stays visually distinguishable from a true rest day
//  6. otherwise -> none
func ResolveDailyEffort(day DayRecord) DayRecord {
	// callers may supply untrusted aggregates
	day.TotalDistance = sanitize(day.TotalDistance)
	day.TotalDurationMinutes = sanitize(day.TotalDurationMinutes)
	if day.ActivityCount < 0 {
		day.ActivityCount = 0
	}

	anyDistanceStyle := false
	allDurationStyle := len(day.ActivityTypes) > 0
	for _, label := range day.ActivityTypes {
		if activities.IsDurationStyle(label) {
			continue
		}
		anyDistanceStyle = true
		allDurationStyle = false
	}

	switch {
	case anyDistanceStyle && day.TotalDistance > 0:
		day.EffortMetric, day.EffortValue = EffortMetricDistance, day.TotalDistance
	case allDurationStyle && day.TotalDurationMinutes > 0:
		day.EffortMetric, day.EffortValue = EffortMetricTime, day.TotalDurationMinutes
	case day.TotalDistance > 0:
		day.EffortMetric, day.EffortValue = EffortMetricDistance, day.TotalDistance
	case day.TotalDurationMinutes > 0:
		day.EffortMetric, day.EffortValue = EffortMetricTime, day.TotalDurationMinutes
	case day.ActivityCount > 0:
		day.EffortMetric, day.EffortValue = EffortMetricTime, 1
	default:
		day.EffortMetric, day.EffortValue = EffortMetricNone, 0
	}

	return day
}

// sanitize clamps negative and non-finite values to 0.
func sanitize(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}
