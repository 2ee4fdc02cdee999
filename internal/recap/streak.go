package recap

import (
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
)

const oneDay = 24 * time.Hour

// AnalyzeStreaks computes the longest run of consecutive active days and
// the maximum number of distinct active days found inside any 7-calendar-day
// span. Unparseable day keys are skipped rather than failing the whole
// computation. Pure and order-independent given the same input set.
func AnalyzeStreaks(dayKeys []string) StreakMetrics {
	days := parseDistinctDays(dayKeys)
	return StreakMetrics{
		LongestStreakDays:       longestStreak(days),
		BestSevenDayWindowCount: bestSevenDayWindow(days),
	}
}

func parseDistinctDays(dayKeys []string) []time.Time {
	seen := make(map[string]struct{}, len(dayKeys))
	days := make([]time.Time, 0, len(dayKeys))
	for _, key := range dayKeys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		parsed, err := parseDayKey(key)
		if err != nil {
			log.Tracef("analyze streaks: skipping invalid day key [%s]: %s", key, err)
			continue
		}
		days = append(days, parsed)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	return days
}

func longestStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}

	best, current := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == oneDay {
			current++
		} else {
			current = 1
		}
		if current > best {
			best = current
		}
	}
	return best
}

// bestSevenDayWindow slides a two-pointer window over the sorted distinct
// days; the window span must not exceed 7 calendar days inclusive.
func bestSevenDayWindow(days []time.Time) int {
	best, left := 0, 0
	for right := range days {
		for days[right].Sub(days[left]) > 6*oneDay {
			left++
		}
		if windowSize := right - left + 1; windowSize > best {
			best = windowSize
		}
	}
	return best
}
