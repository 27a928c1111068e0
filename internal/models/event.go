package models

import "time"

// Event is a scheduled occurrence on the family week plan. Start and end
// times are stored as clock strings ("HH:MM" or "HH:MM:SS") exactly as the
// store returns them; parsing happens in the schedule package so a bad value
// degrades a single event instead of failing a query.
type Event struct {
	EventID     int       `json:"event_id"`
	FamilyID    string    `json:"family_id"`
	UserID      *string   `json:"user_id,omitempty"`
	Title       string    `json:"title"`
	Person      string    `json:"person"`
	Category    string    `json:"category"`
	Date        time.Time `json:"event_date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Day returns the event date truncated to midnight in its own location.
func (e *Event) Day() time.Time {
	return time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, e.Date.Location())
}
