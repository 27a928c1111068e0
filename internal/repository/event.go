package repository

import (
	"context"
	"time"

	"github.com/hray3182/FamilyBoard/internal/database"
	"github.com/hray3182/FamilyBoard/internal/models"
)

type EventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO schedule_event (family_id, user_id, title, person, category, event_date,
		 start_time, end_time, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING event_id, created_at`,
		event.FamilyID, event.UserID, event.Title, event.Person, event.Category,
		event.Date, event.StartTime, event.EndTime, event.Description,
	).Scan(&event.EventID, &event.CreatedAt)
}

// GetByDateRange lists a family's events with event_date in [from, to],
// ordered by date then start time. This is the weekly schedule query; the
// layout engine consumes its result as-is.
func (r *EventRepository) GetByDateRange(ctx context.Context, familyID string, from, to time.Time) ([]*models.Event, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT event_id, family_id, user_id, title, person, category, event_date,
		 start_time, end_time, description, created_at
		 FROM schedule_event
		 WHERE family_id = $1 AND event_date >= $2 AND event_date <= $3
		 ORDER BY event_date ASC, start_time ASC, event_id ASC`,
		familyID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepository) GetByID(ctx context.Context, eventID int) (*models.Event, error) {
	event := &models.Event{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT event_id, family_id, user_id, title, person, category, event_date,
		 start_time, end_time, description, created_at
		 FROM schedule_event WHERE event_id = $1`,
		eventID,
	).Scan(&event.EventID, &event.FamilyID, &event.UserID, &event.Title, &event.Person,
		&event.Category, &event.Date, &event.StartTime, &event.EndTime,
		&event.Description, &event.CreatedAt)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepository) Delete(ctx context.Context, eventID int) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM schedule_event WHERE event_id = $1`,
		eventID,
	)
	return err
}

func scanEvents(rows interface {
	Next() bool
	Scan(dest ...any) error
}) ([]*models.Event, error) {
	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		if err := rows.Scan(&event.EventID, &event.FamilyID, &event.UserID, &event.Title,
			&event.Person, &event.Category, &event.Date, &event.StartTime, &event.EndTime,
			&event.Description, &event.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}
