package models

import "time"

// Task board statuses.
const (
	StatusTodo       = "To-Do"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

// TaskStatuses lists the board columns in display order.
var TaskStatuses = []string{StatusTodo, StatusInProgress, StatusDone}

type Task struct {
	TaskID      int        `json:"task_id"`
	FamilyID    string     `json:"family_id"`
	UserID      *string    `json:"user_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	AssignedTo  string     `json:"assigned_to"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ValidStatus reports whether s is one of the board columns.
func ValidStatus(s string) bool {
	for _, v := range TaskStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// NextStatus returns the column to the right, or the current one at the edge.
func NextStatus(s string) string {
	for i, v := range TaskStatuses {
		if v == s && i+1 < len(TaskStatuses) {
			return TaskStatuses[i+1]
		}
	}
	return s
}

// PrevStatus returns the column to the left, or the current one at the edge.
func PrevStatus(s string) string {
	for i, v := range TaskStatuses {
		if v == s && i > 0 {
			return TaskStatuses[i-1]
		}
	}
	return s
}
