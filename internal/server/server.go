// Package server exposes the family dashboard as a JSON HTTP API. It is a
// thin presenter: every handler is one synchronous pass of store query,
// pure computation, response.
package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hray3182/FamilyBoard/internal/ai"
	"github.com/hray3182/FamilyBoard/internal/config"
	"github.com/hray3182/FamilyBoard/internal/models"
	"github.com/hray3182/FamilyBoard/internal/schedule"
)

// Store interfaces keep handlers testable against fakes; the repository
// structs satisfy them.
type EventStore interface {
	Create(ctx context.Context, event *models.Event) error
	GetByDateRange(ctx context.Context, familyID string, from, to time.Time) ([]*models.Event, error)
	GetByID(ctx context.Context, eventID int) (*models.Event, error)
	Delete(ctx context.Context, eventID int) error
}

type TaskStore interface {
	Create(ctx context.Context, task *models.Task) error
	GetByFamilyID(ctx context.Context, familyID string) ([]*models.Task, error)
	GetByID(ctx context.Context, taskID int) (*models.Task, error)
	UpdateStatus(ctx context.Context, taskID int, status string) error
	Delete(ctx context.Context, taskID int) error
}

type ShoppingStore interface {
	CreateList(ctx context.Context, list *models.ShoppingList) error
	GetListsByFamilyID(ctx context.Context, familyID string) ([]*models.ShoppingList, error)
	DeleteList(ctx context.Context, listID int) error
	AddItem(ctx context.Context, item *models.ShoppingItem) error
	GetItemsByListID(ctx context.Context, listID int) ([]*models.ShoppingItem, error)
	SetItemChecked(ctx context.Context, itemID int, checked bool) error
	DeleteItem(ctx context.Context, itemID int) error
}

type VacationStore interface {
	Create(ctx context.Context, v *models.Vacation) error
	GetByFamilyID(ctx context.Context, familyID string) ([]*models.Vacation, error)
	Delete(ctx context.Context, vacationID int) error
}

// EventParser is the optional natural-language quick-add backend.
type EventParser interface {
	ParseEvent(ctx context.Context, text string, now time.Time, categories []string) (*ai.EventDraft, error)
}

var (
	requestCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "familyboard_http_requests_total",
		Help: "HTTP requests by method, path and status.",
	}, []string{"method", "path", "status"})

	layoutDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "familyboard_week_layout_seconds",
		Help:    "Time spent building the weekly grid layout.",
		Buckets: prometheus.DefBuckets,
	})
)

type Options struct {
	Debug      bool
	EnableCORS bool
	Layout     schedule.Options
	// Now is injectable for tests; defaults to time.Now. It is sampled once
	// per request so a midnight rollover cannot flip the week mid-render.
	Now func() time.Time
}

type Server struct {
	engine    *gin.Engine
	events    EventStore
	tasks     TaskStore
	shopping  ShoppingStore
	vacations VacationStore
	parser    EventParser
	palette   *config.Palette
	layout    schedule.Options
	now       func() time.Time
}

func New(events EventStore, tasks TaskStore, shopping ShoppingStore, vacations VacationStore, parser EventParser, palette *config.Palette, opts Options) *Server {
	if !opts.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if palette == nil {
		palette = config.DefaultPalette()
	}

	engine := gin.New()
	engine.Use(gin.Logger())
	engine.Use(gin.Recovery())
	engine.Use(countRequests())
	if opts.EnableCORS {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
		engine.Use(cors.New(corsConfig))
	}

	s := &Server{
		engine:    engine,
		events:    events,
		tasks:     tasks,
		shopping:  shopping,
		vacations: vacations,
		parser:    parser,
		palette:   palette,
		layout:    opts.Layout,
		now:       opts.Now,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api/v1")

	fam := api.Group("/families/:familyID")
	fam.GET("/schedule/week", s.handleWeek)
	fam.GET("/schedule/week.ics", s.handleWeekICS)
	fam.POST("/schedule/events", s.handleCreateEvent)
	fam.POST("/schedule/quickadd", s.handleQuickAdd)
	api.DELETE("/schedule/events/:id", s.handleDeleteEvent)

	fam.GET("/tasks", s.handleListTasks)
	fam.POST("/tasks", s.handleCreateTask)
	api.PATCH("/tasks/:id/status", s.handleUpdateTaskStatus)
	api.PATCH("/tasks/:id/move", s.handleMoveTask)
	api.DELETE("/tasks/:id", s.handleDeleteTask)

	fam.GET("/shopping/lists", s.handleListShoppingLists)
	fam.POST("/shopping/lists", s.handleCreateShoppingList)
	api.DELETE("/shopping/lists/:id", s.handleDeleteShoppingList)
	api.GET("/shopping/lists/:id/items", s.handleListShoppingItems)
	api.POST("/shopping/lists/:id/items", s.handleAddShoppingItem)
	api.PATCH("/shopping/items/:id", s.handleSetItemChecked)
	api.DELETE("/shopping/items/:id", s.handleDeleteShoppingItem)

	fam.GET("/vacations", s.handleListVacations)
	fam.POST("/vacations", s.handleCreateVacation)
	api.DELETE("/vacations/:id", s.handleDeleteVacation)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP until the context is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		requestCount.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
