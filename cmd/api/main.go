package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"one48-planner/config"
	_ "one48-planner/docs" // Swagger docs
	"one48-planner/internal/assistant"
	"one48-planner/internal/calsync"
	"one48-planner/internal/gesture"
	"one48-planner/internal/httpserver"
	"one48-planner/internal/middleware"
	"one48-planner/internal/model"
	"one48-planner/internal/planner/repository/realtime"
	"one48-planner/internal/planner/usecase"
	"one48-planner/internal/schedule"
	"one48-planner/pkg/gemini"
	"one48-planner/pkg/googleauth"
	"one48-planner/pkg/log"
	"one48-planner/pkg/timegrid"
)

// @title       One48 Planner API
// @description Weekly schedule engine with drag-and-drop gestures, an AI assistant and Google Calendar sync.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting One48 Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store URL: %s", cfg.Store.BaseURL)

	loc, err := time.LoadLocation(cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.GoogleCalendar.Timezone, err)
		loc = time.UTC
	}

	// 3. Schedule board and gesture engine
	board := schedule.New(nil)
	gestureEngine := gesture.New(board, timegrid.Default())

	// 4. Realtime store
	store := realtime.NewClient(cfg.Store.BaseURL, cfg.Store.AuthSecret, logger)

	// 5. Google Calendar session (optional)
	var authProvider *googleauth.Provider
	if cfg.GoogleCalendar.CredentialsPath != "" {
		creds, readErr := os.ReadFile(cfg.GoogleCalendar.CredentialsPath)
		if readErr != nil {
			logger.Warnf(ctx, "Google credentials not available (optional): %v", readErr)
		} else {
			authProvider, err = googleauth.NewProvider(creds, cfg.GoogleCalendar.TokenCacheDir)
			if err != nil {
				logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
				logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to connect a Google account")
			} else {
				logger.Info(ctx, "Google Calendar auth initialized")
			}
		}
	}

	var session usecase.SessionChecker = noSession{}
	if authProvider != nil {
		session = authProvider
	}

	// 6. Sync engine
	syncEngine := calsync.NewEngine(board, &lazyCalendar{auth: authProvider}, session, logger, calsync.Config{
		CalendarID:       cfg.GoogleCalendar.CalendarID,
		Timezone:         cfg.GoogleCalendar.Timezone,
		Location:         loc,
		Interval:         time.Duration(cfg.Sync.IntervalSeconds) * time.Second,
		UploadsPerMinute: cfg.Sync.UploadsPerMinute,
	})

	// 7. Assistant interpreter
	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY is missing, assistant requests will fail")
	}
	geminiClient := gemini.NewClientWithModel(cfg.Gemini.APIKey, cfg.Gemini.Model)
	interp := assistant.NewInterpreter(geminiClient, logger)

	// 8. Planner UseCase
	plannerUC := usecase.New(logger, board, gestureEngine, syncEngine, interp, store, session, loc)

	sc := model.Scope{UserID: middleware.DefaultUserID}
	if err := plannerUC.Reload(ctx, sc); err != nil {
		logger.Warnf(ctx, "Initial store load failed: %v", err)
	}
	go func() {
		if err := plannerUC.WatchStore(ctx, sc); err != nil {
			logger.Warnf(ctx, "Store subscription unavailable: %v", err)
		}
	}()

	if err := syncEngine.StartAutoSync(); err != nil {
		logger.Warnf(ctx, "Auto-sync not started: %v", err)
	}
	defer syncEngine.StopAutoSync()

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		PlannerUC:      plannerUC,
		RequestsPerMin: cfg.HTTPServer.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
