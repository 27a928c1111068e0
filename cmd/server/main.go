package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/hray3182/FamilyBoard/internal/ai"
	"github.com/hray3182/FamilyBoard/internal/config"
	"github.com/hray3182/FamilyBoard/internal/database"
	"github.com/hray3182/FamilyBoard/internal/digest"
	"github.com/hray3182/FamilyBoard/internal/repository"
	"github.com/hray3182/FamilyBoard/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Validate required config
	if cfg.DatabaseURI == "" {
		log.Fatal("DATABASE_URI is required")
	}

	// Create context cancelled on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to database
	db, err := database.New(ctx, cfg.DatabaseURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to database")

	// Run migrations
	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	// Load category colors (optional override file)
	palette, err := config.LoadPalette(cfg.ColorsFile)
	if err != nil {
		log.Fatalf("Failed to load color palette: %v", err)
	}

	// Create repositories
	eventRepo := repository.NewEventRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	shoppingRepo := repository.NewShoppingRepository(db)
	vacationRepo := repository.NewVacationRepository(db)
	familyRepo := repository.NewFamilyRepository(db)

	// Initialize AI client (optional)
	var parser server.EventParser
	if cfg.AIAPIKey != "" {
		parser = ai.New(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
		log.Printf("AI client initialized (model: %s)", cfg.AIModel)
	} else {
		log.Println("AI client not configured, quick add disabled")
	}

	// Start the Telegram morning digest (optional)
	if cfg.TelegramToken != "" {
		tgAPI, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
		if err != nil {
			log.Fatalf("Failed to create Telegram API: %v", err)
		}
		d := digest.New(tgAPI, familyRepo, eventRepo, cfg.DigestCron)
		go func() {
			if err := d.Start(ctx); err != nil && err != context.Canceled {
				log.Printf("Digest exited: %v", err)
			}
		}()
	} else {
		log.Println("Telegram not configured, daily digest disabled")
	}

	srv := server.New(eventRepo, taskRepo, shoppingRepo, vacationRepo, parser, palette, server.Options{
		EnableCORS: true,
	})

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("Received signal %v, shutting down...", sig)
		cancel()
	}()

	log.Printf("Listening on %s", cfg.ListenAddr)
	if err := srv.Run(ctx, cfg.ListenAddr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Shutdown complete")
}
