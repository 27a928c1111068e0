package models

import "time"

type Vacation struct {
	VacationID int       `json:"vacation_id"`
	FamilyID   string    `json:"family_id"`
	UserID     *string   `json:"user_id,omitempty"`
	Person     string    `json:"person"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}
