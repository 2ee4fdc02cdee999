package recap

import "math"

// NormalizeEffortScores computes the relative 0-100 effort score for every
// day of the reporting window and buckets it into one of 5 heatmap levels.
// Days are scaled against the maximum effort value observed for their own
// metric family within the window, so the same absolute distance can map
// to different scores in different windows.
//
// A day that already carries a caller-supplied score keeps it (clamped to
// [0,100]); its metric and value are left untouched for display. Returns a
// new slice, input records are not mutated.
func NormalizeEffortScores(days []DayRecord) []DayRecord {
	var maxDistanceEffort, maxTimeEffort float64
	for _, day := range days {
		switch day.EffortMetric {
		case EffortMetricDistance:
			if day.EffortValue > maxDistanceEffort {
				maxDistanceEffort = day.EffortValue
			}
		case EffortMetricTime:
			if day.EffortValue > maxTimeEffort {
				maxTimeEffort = day.EffortValue
			}
		}
	}

	normalized := make([]DayRecord, len(days))
	for i, day := range days {
		if day.EffortScore != UnresolvedEffortScore {
			day.EffortScore = clampScore(day.EffortScore)
		} else {
			day.EffortScore = relativeScore(day, maxDistanceEffort, maxTimeEffort)
		}
		day.Level = LevelForScore(day.EffortScore)
		normalized[i] = day
	}
	return normalized
}

func relativeScore(day DayRecord, maxDistanceEffort, maxTimeEffort float64) int {
	switch day.EffortMetric {
	case EffortMetricDistance:
		if maxDistanceEffort > 0 {
			return int(math.Round(day.EffortValue / maxDistanceEffort * 100))
		}
	case EffortMetricTime:
		if maxTimeEffort > 0 {
			return int(math.Round(day.EffortValue / maxTimeEffort * 100))
		}
	}
	return 0
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// LevelForScore buckets a 0-100 effort score into 5 discrete levels used
// for calendar cell coloring.
func LevelForScore(score int) int {
	switch {
	case score <= 0:
		return 0
	case score <= 25:
		return 1
	case score <= 50:
		return 2
	case score <= 75:
		return 3
	default:
		return 4
	}
}
