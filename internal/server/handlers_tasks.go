package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hray3182/FamilyBoard/internal/models"
)

type boardPayload struct {
	Statuses []string                  `json:"statuses"`
	Columns  map[string][]*models.Task `json:"columns"`
}

// handleListTasks returns the kanban board grouped by status column.
func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.tasks.GetByFamilyID(c.Request.Context(), c.Param("familyID"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load tasks")
		return
	}

	board := boardPayload{
		Statuses: models.TaskStatuses,
		Columns:  make(map[string][]*models.Task, len(models.TaskStatuses)),
	}
	for _, st := range models.TaskStatuses {
		board.Columns[st] = []*models.Task{}
	}
	for _, t := range tasks {
		if _, ok := board.Columns[t.Status]; !ok {
			// Unknown status from an older revision; show it in the first column.
			t.Status = models.StatusTodo
		}
		board.Columns[t.Status] = append(board.Columns[t.Status], t)
	}

	respondOK(c, http.StatusOK, board)
}

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Priority    string  `json:"priority"`
	AssignedTo  string  `json:"assigned_to"`
	DueDate     string  `json:"due_date"`
	UserID      *string `json:"user_id"`
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		respondError(c, http.StatusBadRequest, "title is required")
		return
	}

	task := &models.Task{
		FamilyID:    c.Param("familyID"),
		UserID:      req.UserID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		AssignedTo:  req.AssignedTo,
		Status:      models.StatusTodo,
	}
	if req.DueDate != "" {
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			respondError(c, http.StatusBadRequest, "due_date must be YYYY-MM-DD")
			return
		}
		task.DueDate = &due
	}
	if task.Priority == "" {
		task.Priority = "Medium"
	}

	if err := s.tasks.Create(c.Request.Context(), task); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create task")
		return
	}
	respondOK(c, http.StatusCreated, task)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleUpdateTaskStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid task id")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if !models.ValidStatus(req.Status) {
		respondError(c, http.StatusBadRequest, "unknown status")
		return
	}

	if err := s.tasks.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update task")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"task_id": id, "status": req.Status})
}

type moveTaskRequest struct {
	Direction string `json:"direction"`
}

// handleMoveTask shifts a task one board column left or right. Moving past
// an edge column is a no-op, not an error.
func (s *Server) handleMoveTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid task id")
		return
	}

	var req moveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	task, err := s.tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "task not found")
		return
	}

	var status string
	switch req.Direction {
	case "next":
		status = models.NextStatus(task.Status)
	case "prev":
		status = models.PrevStatus(task.Status)
	default:
		respondError(c, http.StatusBadRequest, "direction must be next or prev")
		return
	}

	if status != task.Status {
		if err := s.tasks.UpdateStatus(c.Request.Context(), id, status); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to move task")
			return
		}
	}
	respondOK(c, http.StatusOK, gin.H{"task_id": id, "status": status})
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid task id")
		return
	}
	if err := s.tasks.Delete(c.Request.Context(), id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete task")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": id})
}
