package repository

import (
	"context"

	"github.com/hray3182/FamilyBoard/internal/database"
	"github.com/hray3182/FamilyBoard/internal/models"
)

type TaskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO task (family_id, user_id, title, description, category, priority,
		 assigned_to, due_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING task_id, created_at`,
		task.FamilyID, task.UserID, task.Title, task.Description, task.Category,
		task.Priority, task.AssignedTo, task.DueDate, task.Status,
	).Scan(&task.TaskID, &task.CreatedAt)
}

func (r *TaskRepository) GetByFamilyID(ctx context.Context, familyID string) ([]*models.Task, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT task_id, family_id, user_id, title, description, category, priority,
		 assigned_to, due_date, status, created_at
		 FROM task WHERE family_id = $1
		 ORDER BY created_at DESC`,
		familyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task := &models.Task{}
		if err := rows.Scan(&task.TaskID, &task.FamilyID, &task.UserID, &task.Title,
			&task.Description, &task.Category, &task.Priority, &task.AssignedTo,
			&task.DueDate, &task.Status, &task.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, taskID int) (*models.Task, error) {
	task := &models.Task{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT task_id, family_id, user_id, title, description, category, priority,
		 assigned_to, due_date, status, created_at
		 FROM task WHERE task_id = $1`,
		taskID,
	).Scan(&task.TaskID, &task.FamilyID, &task.UserID, &task.Title,
		&task.Description, &task.Category, &task.Priority, &task.AssignedTo,
		&task.DueDate, &task.Status, &task.CreatedAt)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, taskID int, status string) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE task SET status = $1 WHERE task_id = $2`,
		status, taskID,
	)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, taskID int) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM task WHERE task_id = $1`,
		taskID,
	)
	return err
}
