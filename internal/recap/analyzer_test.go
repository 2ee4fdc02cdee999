package recap

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/strideworks/recap/internal/activities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testActivity(activityType string, startedAt time.Time, durationMin int, distance float64) activities.Activity {
	return activities.Activity{
		Type:            activityType,
		Name:            activityType + " session",
		StartedAt:       startedAt,
		DurationSeconds: durationMin * 60,
		Distance:        distance,
	}
}

func TestAnalyzer_Recap(t *testing.T) {
	repo := newRepoMock(
		testActivity("Run", time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC), 30, 5),
		testActivity("Run", time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC), 55, 10),
		testActivity("Yoga", time.Date(2024, 1, 2, 19, 0, 0, 0, time.UTC), 40, 0),
		testActivity("Run", time.Date(2024, 1, 3, 7, 0, 0, 0, time.UTC), 110, 20),
		testActivity("Yoga", time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC), 40, 0),
	)
	analyzer := NewAnalyzer(repo)

	recap, err := analyzer.Recap(context.Background(), RecapParams{
		Window: Window{
			From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, recap)

	assert.Equal(t, 5, recap.TotalActivities)
	assert.Equal(t, 4, recap.ActiveDays)
	assert.InDelta(t, 35, recap.TotalDistance, 0.001)
	assert.InDelta(t, 275, recap.TotalDurationMinutes, 0.001)

	assert.Equal(t, 3, recap.Streaks.LongestStreakDays)
	assert.Equal(t, 4, recap.Streaks.BestSevenDayWindowCount)

	require.Len(t, recap.Days, 4)
	// distance days scale against the 20 km max, the yoga-only day
	// against its own time family max of 40 min
	assert.Equal(t, 25, recap.Days[0].EffortScore)
	assert.Equal(t, 50, recap.Days[1].EffortScore)
	assert.Equal(t, 100, recap.Days[2].EffortScore)
	assert.Equal(t, EffortMetricTime, recap.Days[3].EffortMetric)
	assert.Equal(t, 100, recap.Days[3].EffortScore)

	// Mon Jan 1 through Sun Jan 7 is exactly one full week
	require.Len(t, recap.Weeks, 1)
	require.Len(t, recap.Weeks[0].Cells, 7)
	assert.Equal(t, "Jan", recap.Weeks[0].MonthLabel)
	assert.Equal(t, 2, recap.Weeks[0].Cells[1].ActivityCount)
	assert.Equal(t, 0, recap.Weeks[0].Cells[3].Level) // Jan 4, rest day
}

func TestAnalyzer_Recap_ScoreOverrides(t *testing.T) {
	repo := newRepoMock(
		testActivity("Run", time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC), 30, 5),
		testActivity("Run", time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC), 60, 10),
	)
	analyzer := NewAnalyzer(repo)

	recap, err := analyzer.Recap(context.Background(), RecapParams{
		Window: Window{
			From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		},
		ScoreOverrides: map[string]int{
			"2024-01-01": 90,
		},
	})
	require.NoError(t, err)
	require.Len(t, recap.Days, 2)

	assert.Equal(t, 90, recap.Days[0].EffortScore)
	assert.Equal(t, 4, recap.Days[0].Level)
	assert.Equal(t, 100, recap.Days[1].EffortScore)
}

func TestAnalyzer_Recap_WindowFiltersActivities(t *testing.T) {
	repo := newRepoMock(
		testActivity("Run", time.Date(2023, 12, 31, 7, 0, 0, 0, time.UTC), 30, 5),
		testActivity("Run", time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC), 30, 5),
		// late evening on the window's last day is still inside
		testActivity("Run", time.Date(2024, 1, 7, 23, 30, 0, 0, time.UTC), 30, 5),
		testActivity("Run", time.Date(2024, 1, 8, 0, 30, 0, 0, time.UTC), 30, 5),
	)
	analyzer := NewAnalyzer(repo)

	recap, err := analyzer.Recap(context.Background(), RecapParams{
		Window: Window{
			From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, recap.TotalActivities)
	assert.Equal(t, 2, recap.ActiveDays)
}

func TestAnalyzer_Recap_EmptyWindow(t *testing.T) {
	analyzer := NewAnalyzer(newRepoMock())

	recap, err := analyzer.Recap(context.Background(), RecapParams{
		Window: Window{
			From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)

	assert.Zero(t, recap.TotalActivities)
	assert.Empty(t, recap.Days)
	assert.Zero(t, recap.Streaks.LongestStreakDays)
	// the grid still covers the window
	require.Len(t, recap.Weeks, 1)
	require.Len(t, recap.Weeks[0].Cells, 7)
}

func TestAnalyzer_Recap_RepoError(t *testing.T) {
	repo := newRepoMock()
	repo.listErr = errors.New("connection refused")
	analyzer := NewAnalyzer(repo)

	recap, err := analyzer.Recap(context.Background(), RecapParams{
		Window: Window{
			From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		},
	})
	require.Error(t, err)
	assert.Nil(t, recap)
}

func TestAnalyzer_Streaks(t *testing.T) {
	repo := newRepoMock(
		testActivity("Run", time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC), 30, 5),
		testActivity("Run", time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC), 30, 5),
		testActivity("Run", time.Date(2024, 1, 3, 7, 0, 0, 0, time.UTC), 30, 5),
		testActivity("Run", time.Date(2024, 1, 5, 7, 0, 0, 0, time.UTC), 30, 5),
	)
	analyzer := NewAnalyzer(repo)

	streaks, err := analyzer.Streaks(context.Background(), Window{
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, streaks.LongestStreakDays)
	assert.Equal(t, 4, streaks.BestSevenDayWindowCount)
}
