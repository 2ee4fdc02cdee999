package recap

import (
	"context"
	"fmt"
	"time"

	"github.com/strideworks/recap/internal/activities"
	"github.com/strideworks/recap/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type activitiesRepo interface {
	ListRange(ctx context.Context, from, to time.Time) ([]activities.Activity, error)
}

// Analyzer derives the recap analytics (streaks, per-day relative effort,
// calendar heatmap grid) for a reporting window.
type Analyzer struct {
	repo activitiesRepo
}

func NewAnalyzer(repo activitiesRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

type RecapParams struct {
	Window Window
	// ScoreOverrides maps day keys to caller-authoritative effort scores
	// (e.g. from a physiological load model); an override short-circuits
	// the window-relative normalization for that day.
	ScoreOverrides map[string]int
}

type Recap struct {
	Window               Window        `json:"window"`
	Streaks              StreakMetrics `json:"streaks"`
	Days                 []DayRecord   `json:"days"`
	Weeks                []WeekColumn  `json:"weeks"`
	TotalActivities      int           `json:"totalActivities"`
	ActiveDays           int           `json:"activeDays"`
	TotalDistance        float64       `json:"totalDistance"`
	TotalDurationMinutes float64       `json:"totalDurationMinutes"`
}

func (a *Analyzer) Recap(ctx context.Context, params RecapParams) (_ *Recap, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.recap.compute")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	window := params.Window.Normalized()
	span.SetAttributes(
		attribute.String("window.from", DayKey(window.From)),
		attribute.String("window.to", DayKey(window.To)),
	)

	items, err := a.repo.ListRange(ctx, window.From, window.To.Add(oneDay-time.Nanosecond))
	if err != nil {
		return nil, fmt.Errorf("list activities in range: %w", err)
	}

	days := AggregateByDay(items)
	for i := range days {
		days[i] = ResolveDailyEffort(days[i])
	}

	for i := range days {
		if score, ok := params.ScoreOverrides[DayKey(days[i].Date)]; ok {
			days[i].EffortScore = score
		}
	}

	days = NormalizeEffortScores(days)

	recap := &Recap{
		Window:          window,
		Streaks:         AnalyzeStreaks(activeDayKeysOf(items)),
		Days:            days,
		Weeks:           BuildCalendarGrid(window, days),
		TotalActivities: len(items),
		ActiveDays:      len(days),
	}
	for _, day := range days {
		recap.TotalDistance += day.TotalDistance
		recap.TotalDurationMinutes += day.TotalDurationMinutes
	}

	return recap, nil
}

func (a *Analyzer) Streaks(ctx context.Context, window Window) (_ *StreakMetrics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.recap.streaks")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	window = window.Normalized()
	items, err := a.repo.ListRange(ctx, window.From, window.To.Add(oneDay-time.Nanosecond))
	if err != nil {
		return nil, fmt.Errorf("list activities in range: %w", err)
	}

	streaks := AnalyzeStreaks(activeDayKeysOf(items))
	return &streaks, nil
}

func activeDayKeysOf(items []activities.Activity) []string {
	timestamps := make([]time.Time, 0, len(items))
	for _, item := range items {
		timestamps = append(timestamps, item.StartedAt)
	}
	return ActiveDayKeys(timestamps)
}
