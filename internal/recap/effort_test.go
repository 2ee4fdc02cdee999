package recap

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveDailyEffort_DistanceStyleWins(t *testing.T) {
	day := ResolveDailyEffort(DayRecord{
		Date:                 time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ActivityCount:        2,
		TotalDistance:        12.5,
		TotalDurationMinutes: 95,
		ActivityTypes:        []string{"Run", "Yoga"},
	})

	assert.Equal(t, EffortMetricDistance, day.EffortMetric)
	assert.InDelta(t, 12.5, day.EffortValue, 0.001)
}

func TestResolveDailyEffort_AllDurationStyle(t *testing.T) {
	// a 40 minute yoga session scores on time, not on its zero distance
	day := ResolveDailyEffort(DayRecord{
		ActivityCount:        1,
		TotalDurationMinutes: 40,
		ActivityTypes:        []string{"Yoga"},
	})

	assert.Equal(t, EffortMetricTime, day.EffortMetric)
	assert.InDelta(t, 40, day.EffortValue, 0.001)
}

func TestResolveDailyEffort_DistanceStyleWithoutDistance(t *testing.T) {
	// treadmill run recorded without distance falls through to duration
	day := ResolveDailyEffort(DayRecord{
		ActivityCount:        1,
		TotalDurationMinutes: 30,
		ActivityTypes:        []string{"Run"},
	})

	assert.Equal(t, EffortMetricTime, day.EffortMetric)
	assert.InDelta(t, 30, day.EffortValue, 0.001)
}

func TestResolveDailyEffort_DurationStyleWithDistanceFallback(t *testing.T) {
	// duration-style day with zero duration but a recorded distance
	day := ResolveDailyEffort(DayRecord{
		ActivityCount: 1,
		TotalDistance: 3,
		ActivityTypes: []string{"Workout"},
	})

	assert.Equal(t, EffortMetricDistance, day.EffortMetric)
	assert.InDelta(t, 3, day.EffortValue, 0.001)
}

func TestResolveDailyEffort_CountOnlyDay(t *testing.T) {
	// no distance, no duration, but something happened: nominal effort
	// so the day is distinguishable from a rest day
	day := ResolveDailyEffort(DayRecord{
		ActivityCount: 1,
		ActivityTypes: []string{"Workout"},
	})

	assert.Equal(t, EffortMetricTime, day.EffortMetric)
	assert.InDelta(t, 1, day.EffortValue, 0.001)
}

func TestResolveDailyEffort_EmptyDay(t *testing.T) {
	day := ResolveDailyEffort(DayRecord{})
	assert.Equal(t, EffortMetricNone, day.EffortMetric)
	assert.Zero(t, day.EffortValue)
}

func TestResolveDailyEffort_SanitizesGarbageInputs(t *testing.T) {
	day := ResolveDailyEffort(DayRecord{
		ActivityCount:        -3,
		TotalDistance:        math.NaN(),
		TotalDurationMinutes: math.Inf(1),
	})

	assert.Equal(t, EffortMetricNone, day.EffortMetric)
	assert.Zero(t, day.EffortValue)
	assert.Zero(t, day.ActivityCount)
	assert.Zero(t, day.TotalDistance)
	assert.Zero(t, day.TotalDurationMinutes)
}

func TestResolveDailyEffort_NegativeDistanceIgnored(t *testing.T) {
	day := ResolveDailyEffort(DayRecord{
		ActivityCount:        1,
		TotalDistance:        -5,
		TotalDurationMinutes: 20,
		ActivityTypes:        []string{"Run"},
	})

	assert.Equal(t, EffortMetricTime, day.EffortMetric)
	assert.InDelta(t, 20, day.EffortValue, 0.001)
}

func TestResolveDailyEffort_DoesNotMutateInput(t *testing.T) {
	in := DayRecord{
		ActivityCount: 1,
		TotalDistance: 5,
		ActivityTypes: []string{"Run"},
	}
	_ = ResolveDailyEffort(in)
	assert.Equal(t, EffortMetric(""), in.EffortMetric)
	assert.Zero(t, in.EffortValue)
}

func TestResolveDailyEffort_UnknownTypeTreatedAsDistanceStyle(t *testing.T) {
	day := ResolveDailyEffort(DayRecord{
		ActivityCount: 1,
		TotalDistance: 8,
		ActivityTypes: []string{"Underwater Basket Weaving"},
	})

	assert.Equal(t, EffortMetricDistance, day.EffortMetric)
	assert.InDelta(t, 8, day.EffortValue, 0.001)
}
