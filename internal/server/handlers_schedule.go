package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hray3182/FamilyBoard/internal/ics"
	"github.com/hray3182/FamilyBoard/internal/models"
	"github.com/hray3182/FamilyBoard/internal/schedule"
)

type placedEventPayload struct {
	schedule.PlacedEvent
	Color string `json:"color"`
}

type columnPayload struct {
	Date   time.Time            `json:"date"`
	Events []placedEventPayload `json:"events"`
}

type weekPayload struct {
	Window     schedule.Window `json:"window"`
	WeekOffset int             `json:"week_offset"`
	TimeSlots  []string        `json:"time_slots"`
	Columns    []columnPayload `json:"columns"`
	List       []*models.Event `json:"list"`
	Persons    []string        `json:"persons"`
}

// weekQuery resolves the session state carried in the request: week offset
// and person filter. "Today" is sampled exactly once per request.
func (s *Server) weekQuery(c *gin.Context) (schedule.Session, schedule.Window) {
	sess := schedule.Session{}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			sess.WeekOffset = n
		}
	}
	if v := c.Query("persons"); v != "" {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				sess.Persons = append(sess.Persons, p)
			}
		}
	}
	return sess, sess.Window(s.now())
}

func (s *Server) handleWeek(c *gin.Context) {
	familyID := c.Param("familyID")
	sess, window := s.weekQuery(c)

	events, err := s.events.GetByDateRange(c.Request.Context(), familyID, window.Start, window.End)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load events")
		return
	}

	filtered := schedule.FilterEvents(events, window, sess.Persons)

	started := time.Now()
	grid := schedule.BuildGrid(filtered, window, s.layout)
	layoutDuration.Observe(time.Since(started).Seconds())

	payload := weekPayload{
		Window:     grid.Window,
		WeekOffset: sess.WeekOffset,
		TimeSlots:  grid.TimeSlots,
		Columns:    make([]columnPayload, 0, len(grid.Columns)),
		List:       grid.List,
		Persons:    schedule.DistinctPersons(events),
	}
	for _, col := range grid.Columns {
		out := columnPayload{Date: col.Date, Events: make([]placedEventPayload, 0, len(col.Events))}
		for _, p := range col.Events {
			out.Events = append(out.Events, placedEventPayload{
				PlacedEvent: p,
				Color:       s.palette.Color(p.Event.Category),
			})
		}
		payload.Columns = append(payload.Columns, out)
	}

	respondOK(c, http.StatusOK, payload)
}

func (s *Server) handleWeekICS(c *gin.Context) {
	familyID := c.Param("familyID")
	sess, window := s.weekQuery(c)

	events, err := s.events.GetByDateRange(c.Request.Context(), familyID, window.Start, window.End)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load events")
		return
	}

	filtered := schedule.FilterEvents(events, window, sess.Persons)
	c.Header("Content-Disposition", `attachment; filename="week.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics.ExportWeek(filtered, s.now())))
}

type createEventRequest struct {
	Title       string  `json:"title"`
	Person      string  `json:"person"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Description string  `json:"description"`
	UserID      *string `json:"user_id"`
}

func (s *Server) handleCreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		respondError(c, http.StatusBadRequest, "title is required")
		return
	}
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		respondError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	event := &models.Event{
		FamilyID:    c.Param("familyID"),
		UserID:      req.UserID,
		Title:       strings.TrimSpace(req.Title),
		Person:      strings.TrimSpace(req.Person),
		Category:    req.Category,
		Date:        day,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
	}
	if err := s.events.Create(c.Request.Context(), event); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create event")
		return
	}
	respondOK(c, http.StatusCreated, event)
}

func (s *Server) handleDeleteEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid event id")
		return
	}
	if err := s.events.Delete(c.Request.Context(), id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete event")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": id})
}

type quickAddRequest struct {
	Text   string  `json:"text"`
	UserID *string `json:"user_id"`
}

// handleQuickAdd turns a free-text entry into an event via the configured
// language model. Unavailable when no AI key is configured.
func (s *Server) handleQuickAdd(c *gin.Context) {
	if s.parser == nil {
		respondError(c, http.StatusServiceUnavailable, "quick add is not configured")
		return
	}

	var req quickAddRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		respondError(c, http.StatusBadRequest, "text is required")
		return
	}

	draft, err := s.parser.ParseEvent(c.Request.Context(), req.Text, s.now(), s.palette.Names())
	if err != nil {
		respondError(c, http.StatusBadGateway, "could not understand the entry")
		return
	}

	day, err := time.Parse("2006-01-02", draft.Date)
	if err != nil {
		day = s.now() // undated entries land on today
	}

	event := &models.Event{
		FamilyID:    c.Param("familyID"),
		UserID:      req.UserID,
		Title:       draft.Title,
		Person:      draft.Person,
		Category:    draft.Category,
		Date:        day,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		Description: draft.Description,
	}
	if err := s.events.Create(c.Request.Context(), event); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create event")
		return
	}
	respondOK(c, http.StatusCreated, event)
}
