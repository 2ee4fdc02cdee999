package recap

import "time"

type EffortMetric string

const (
	EffortMetricDistance EffortMetric = "distance"
	EffortMetricTime     EffortMetric = "time"
	EffortMetricNone     EffortMetric = "none"
)

// UnresolvedEffortScore marks a day whose relative effort score has not
// been supplied by the caller and not yet been computed.
const UnresolvedEffortScore = -1

// DayRecord is one calendar day within the reporting window.
type DayRecord struct {
	Date                 time.Time    `json:"date"`
	ActivityCount        int          `json:"activityCount"`
	TotalDurationMinutes float64      `json:"totalDurationMinutes"`
	TotalDistance        float64      `json:"totalDistance"`
	ActivityTypes        []string     `json:"activityTypes"`
	EffortMetric         EffortMetric `json:"effortMetric"`
	EffortValue          float64      `json:"effortValue"`
	EffortScore          int          `json:"effortScore"`
	Level                int          `json:"level"`
}

type StreakMetrics struct {
	LongestStreakDays       int `json:"longestStreakDays"`
	BestSevenDayWindowCount int `json:"bestSevenDayWindowCount"`
}

// Window is the inclusive start/end calendar-date range of a recap.
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Normalized truncates both bounds to calendar days and swaps them
// if the caller passed them reversed, so that From <= To always holds.
func (w Window) Normalized() Window {
	from, to := dateOnly(w.From), dateOnly(w.To)
	if from.After(to) {
		from, to = to, from
	}
	return Window{From: from, To: to}
}

// DayCell is a single cell of the calendar heatmap grid.
// Date is empty for structural filler cells of an incomplete final week.
type DayCell struct {
	Date          string `json:"date"`
	Outside       bool   `json:"outside"`
	ActivityCount int    `json:"activityCount"`
	EffortScore   int    `json:"effortScore"`
	Level         int    `json:"level"`
}

// WeekColumn covers one Monday-first calendar week of the grid.
type WeekColumn struct {
	Index      int       `json:"index"`
	MonthLabel string    `json:"monthLabel,omitempty"`
	Cells      []DayCell `json:"cells"`
}

// dateOnly drops the time component of t, keeping t's own calendar date.
// The result is anchored at UTC midnight so that day arithmetic stays
// exact regardless of DST transitions in the original location.
func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
