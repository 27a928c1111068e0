package schedule

import "time"

// Window is a Monday-to-Sunday date range. Start and End are UTC midnights
// of calendar dates; End is inclusive (Start + 6 days). Membership is decided
// on calendar dates, never on instants, so a window computed from a
// server-local "today" agrees with event dates the store returns as UTC
// midnights.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ComputeWeek returns the week window containing today shifted by offset
// weeks. offset 0 is the current week, negative weeks lie in the past.
// Pure: today is an explicit input, never read from the wall clock here.
func ComputeWeek(today time.Time, offset int) Window {
	day := truncateDay(today)
	weekday := (int(day.Weekday()) + 6) % 7 // Monday = 0
	start := day.AddDate(0, 0, -weekday+offset*7)
	return Window{Start: start, End: start.AddDate(0, 0, 6)}
}

// Day returns the date of column i (0 = Monday).
func (w Window) Day(i int) time.Time {
	return w.Start.AddDate(0, 0, i)
}

// Contains reports whether the date (time component ignored) falls inside
// the window.
func (w Window) Contains(date time.Time) bool {
	d := truncateDay(date)
	return !d.Before(w.Start) && !d.After(w.End)
}

// DayIndex returns the column index 0..6 for a date, or -1 when the date
// lies outside the window.
func (w Window) DayIndex(date time.Time) int {
	d := truncateDay(date)
	days := int(d.Sub(w.Start).Hours() / 24)
	if days < 0 || days > 6 {
		return -1
	}
	return days
}

// truncateDay maps an instant to the UTC midnight of its calendar date in
// its own location. 2025-09-07 23:00+02:00 and 2025-09-07 00:00Z truncate to
// the same value.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Session is the per-user navigation state carried between renders: the week
// offset and the active person filter. It is single-writer by construction
// (one interacting user) and holds no reference to the event data.
type Session struct {
	WeekOffset int      `json:"week_offset"`
	Persons    []string `json:"persons"`
}

// Next moves one week forward.
func (s *Session) Next() { s.WeekOffset++ }

// Prev moves one week back.
func (s *Session) Prev() { s.WeekOffset-- }

// Reset jumps back to the current week.
func (s *Session) Reset() { s.WeekOffset = 0 }

// Window computes the session's week window for the given today. Today is
// captured once per render cycle by the caller so a midnight rollover cannot
// flip the window mid-render.
func (s *Session) Window(today time.Time) Window {
	return ComputeWeek(today, s.WeekOffset)
}
