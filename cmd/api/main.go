package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Application Layer
	appService "georeminder/internal/application/service"
	"georeminder/internal/domain/repository"

	// Infrastructure Layer
	"georeminder/internal/infrastructure/database/memory"
	"georeminder/internal/infrastructure/database/sqlite"
	lineClient "georeminder/internal/infrastructure/line"
	"georeminder/internal/infrastructure/notifier"
	"georeminder/internal/infrastructure/platform"
	"georeminder/internal/infrastructure/scheduler"

	// Interfaces Layer
	"georeminder/internal/interfaces/api/handler"
	"georeminder/internal/interfaces/api/router"

	// Packages
	"georeminder/internal/pkg/config"
	appLogger "georeminder/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
	"gorm.io/gorm"
)

type shutdownDeps struct {
	server    *http.Server
	sync      appService.GeofenceSyncService
	attempts  appService.AttemptService
	geofencer *platform.Geofencer
	db        *gorm.DB
	log       appLogger.Logger
}

func gracefulShutdown(deps shutdownDeps, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	deps.log.Info("Shutting down gracefully, press Ctrl+C again to force")

	deps.log.Info("Stopping geofence sync...")
	deps.sync.Stop()

	// Pending registration attempts end as abandoned.
	deps.attempts.Shutdown()
	deps.geofencer.Wait()

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := deps.server.Shutdown(shutdownCtx); err != nil {
		deps.log.Error("Server forced to shutdown", err)
	}

	if err := sqlite.CloseDB(deps.db); err != nil {
		deps.log.Error("Error closing database", err)
	} else if deps.db != nil {
		deps.log.Info("Database connection closed.")
	}

	deps.log.Info("Server exiting")
	done <- true
}

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	appLog := appLogger.New(cfg.Log.Level, cfg.Log.Format)
	appLog.Info("Logger initialized.")

	// --- Infrastructure ---
	var (
		db    *gorm.DB
		store repository.ReminderStore
	)
	switch cfg.Database.Driver {
	case "memory":
		store = memory.NewReminderStore()
		appLog.Warn("Using in-memory reminder store; reminders are lost on restart")
	default:
		db, err = sqlite.NewDB(cfg.Database.Path, cfg.Database.LogSQL)
		if err != nil {
			appLog.Error("Failed to open database", err)
			os.Exit(1)
		}
		store = sqlite.NewReminderStore(db)
	}
	appLog.Info(fmt.Sprintf("Reminder store initialized (%s).", cfg.Database.Driver))

	var out appService.Notifier = notifier.NewLogNotifier(appLog)
	var line *lineClient.Client
	if cfg.Line.Enabled() {
		line, err = lineClient.NewClient(cfg.Line.ChannelSecret, cfg.Line.ChannelToken, appLog)
		if err != nil {
			appLog.Error("Failed to create LINE client", err)
			os.Exit(1)
		}
		if cfg.Line.NotifyTo != "" {
			out = lineClient.NewNotifier(line, cfg.Line.NotifyTo)
		}
		appLog.Info("LINE client initialized.")
	}

	device := platform.NewDevice(cfg.Device.APILevel)

	// --- Application Services ---
	reminderSvc := appService.NewReminderService(store, appLog,
		appService.WithForcedListError(cfg.Repository.ForceListError))
	eventHandler := appService.NewGeofenceEventHandler(reminderSvc, out, appLog)
	geofencer := platform.NewGeofencer(device, eventHandler, appLog)
	registrar := appService.NewGeofenceRegistrar(reminderSvc, geofencer, appLog, appService.RegistrarOptions{
		MaxPermissionPrompts: cfg.Registrar.MaxPermissionPrompts,
		MaxSettingsRetries:   cfg.Registrar.MaxSettingsRetries,
	})
	attemptSvc := appService.NewAttemptService(registrar, platform.SessionFactory(device, appLog),
		cfg.Registrar.AttemptRetention, appLog)
	syncSvc := appService.NewGeofenceSyncService(scheduler.NewScheduler(appLog), reminderSvc, geofencer,
		cfg.Sync.Cron, appLog)
	appLog.Info("Application services initialized.")

	// --- Geofence sync ---
	if cfg.Sync.Enabled {
		if err := syncSvc.Start(context.Background()); err != nil {
			// Log the error but continue starting the server
			appLog.Error("Failed to start geofence sync", err)
		} else {
			appLog.Info(fmt.Sprintf("Geofence sync scheduled (%s).", cfg.Sync.Cron))
		}
	}

	// --- API Handlers ---
	routerCfg := &router.Config{
		ReminderHandler: handler.NewReminderHandler(reminderSvc, geofencer, appLog),
		AttemptHandler:  handler.NewAttemptHandler(attemptSvc, appLog),
		DeviceHandler:   handler.NewDeviceHandler(device, geofencer),
		GeofenceHandler: handler.NewGeofenceHandler(eventHandler),
		Logger:          appLog,
	}
	if line != nil {
		routerCfg.LineHandler = handler.NewLineHandler(line, reminderSvc, geofencer, appLog)
	}
	echoRouter := router.NewRouter(routerCfg)

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	done := make(chan bool, 1)
	go gracefulShutdown(shutdownDeps{
		server:    apiServer,
		sync:      syncSvc,
		attempts:  attemptSvc,
		geofencer: geofencer,
		db:        db,
		log:       appLog,
	}, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	<-done
	appLog.Info("Graceful shutdown complete.")
}
