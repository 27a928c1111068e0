package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hray3182/FamilyBoard/internal/models"
)

func (s *Server) handleListVacations(c *gin.Context) {
	vacations, err := s.vacations.GetByFamilyID(c.Request.Context(), c.Param("familyID"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load vacations")
		return
	}

	persons := personSet(c.Query("persons"))
	if persons != nil {
		filtered := make([]*models.Vacation, 0, len(vacations))
		for _, v := range vacations {
			if _, ok := persons[v.Person]; ok {
				filtered = append(filtered, v)
			}
		}
		vacations = filtered
	}

	respondOK(c, http.StatusOK, vacations)
}

type createVacationRequest struct {
	Person    string  `json:"person"`
	Type      string  `json:"type"`
	Title     string  `json:"title"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Notes     string  `json:"notes"`
	UserID    *string `json:"user_id"`
}

func (s *Server) handleCreateVacation(c *gin.Context) {
	var req createVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		respondError(c, http.StatusBadRequest, "title is required")
		return
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		respondError(c, http.StatusBadRequest, "end_date is before start_date")
		return
	}

	v := &models.Vacation{
		FamilyID:  c.Param("familyID"),
		UserID:    req.UserID,
		Person:    strings.TrimSpace(req.Person),
		Type:      req.Type,
		Title:     strings.TrimSpace(req.Title),
		StartDate: start,
		EndDate:   end,
		Notes:     req.Notes,
	}
	if err := s.vacations.Create(c.Request.Context(), v); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create vacation")
		return
	}
	respondOK(c, http.StatusCreated, v)
}

func (s *Server) handleDeleteVacation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid vacation id")
		return
	}
	if err := s.vacations.Delete(c.Request.Context(), id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete vacation")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": id})
}

// personSet parses a comma separated persons query into a lookup set;
// nil means no filtering.
func personSet(raw string) map[string]struct{} {
	if raw == "" {
		return nil
	}
	set := make(map[string]struct{})
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			set[p] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
