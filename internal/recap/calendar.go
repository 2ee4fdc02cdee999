package recap

import "time"

// MondayOnOrBefore returns the Monday of the calendar week containing t.
// If t itself is a Monday, t's date is returned; a Sunday wraps 6 days back.
func MondayOnOrBefore(t time.Time) time.Time {
	date := dateOnly(t)
	offset := int(date.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return date.AddDate(0, 0, -offset)
}

// BuildCalendarGrid lays the window's level-annotated days out as a
// Monday-first week grid. Every emitted week has exactly 7 cells: boundary
// weeks carry outside cells for dates beyond the window, and an incomplete
// final week is padded with structurally empty filler cells. A month label
// is assigned to a week the first time a new calendar month appears among
// its non-outside cells; a window with reversed bounds is silently swapped.
func BuildCalendarGrid(window Window, days []DayRecord) []WeekColumn {
	window = window.Normalized()

	dayByKey := make(map[string]DayRecord, len(days))
	for _, day := range days {
		dayByKey[DayKey(day.Date)] = day
	}

	var (
		weeks            []WeekColumn
		cells            []DayCell
		cellDates        []time.Time
		lastLabeledMonth int
	)

	flushWeek := func() {
		if len(cells) == 0 {
			return
		}
		for len(cells) < 7 {
			cells = append(cells, DayCell{Outside: true})
			cellDates = append(cellDates, time.Time{})
		}

		week := WeekColumn{
			Index: len(weeks),
			Cells: cells,
		}
		for i := range cells {
			if cells[i].Outside {
				continue
			}
			monthOrdinal := cellDates[i].Year()*12 + int(cellDates[i].Month())
			if monthOrdinal > lastLabeledMonth {
				week.MonthLabel = cellDates[i].Format("Jan")
				lastLabeledMonth = monthOrdinal
				break
			}
		}

		weeks = append(weeks, week)
		cells, cellDates = nil, nil
	}

	for cur := MondayOnOrBefore(window.From); !cur.After(window.To); cur = cur.AddDate(0, 0, 1) {
		cell := DayCell{Date: DayKey(cur)}
		if cur.Before(window.From) {
			cell.Outside = true
		} else if day, ok := dayByKey[cell.Date]; ok {
			cell.ActivityCount = day.ActivityCount
			cell.EffortScore = day.EffortScore
			cell.Level = day.Level
		}

		cells = append(cells, cell)
		cellDates = append(cellDates, cur)
		if len(cells) == 7 {
			flushWeek()
		}
	}
	flushWeek()

	return weeks
}
