package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/lernia/console-backend/internal/audit"
	"github.com/lernia/console-backend/internal/config"
	"github.com/lernia/console-backend/internal/database"
	"github.com/lernia/console-backend/internal/handler"
	"github.com/lernia/console-backend/internal/logger"
	"github.com/lernia/console-backend/internal/router"
	"github.com/lernia/console-backend/internal/session"
	"github.com/lernia/console-backend/internal/upstream"
	"github.com/lernia/console-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Console Gateway")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Connect to the Audit Database (optional) ──────────────────────
	var recorder audit.Recorder = audit.NopRecorder{}
	if cfg.AuditDatabaseURL != "" {
		pool, err := database.NewAuditPool(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to audit database")
		}
		defer pool.Close()
		recorder = audit.NewPostgresRecorder(pool)
	} else {
		log.Warn().Msg("AUDIT_DATABASE_URL not set, audit trail disabled")
	}

	// ─── Platform Client & Session Manager ─────────────────────────────
	client := upstream.New(cfg, log)
	store := session.NewRedisStore(rdb)
	manager := session.NewManager(client, store, cfg, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Session:      handler.NewSessionHandler(manager, log),
		Dashboard:    handler.NewDashboardHandler(client, manager),
		Teacher:      handler.NewTeacherHandler(client, manager, recorder, log),
		Student:      handler.NewStudentHandler(client, manager, recorder, log),
		Course:       handler.NewCourseHandler(client, manager, recorder, log),
		Quiz:         handler.NewQuizHandler(client, manager, recorder, log),
		Video:        handler.NewVideoHandler(client, manager, recorder, log),
		Withdrawal:   handler.NewWithdrawalHandler(client, manager, recorder, log),
		Verification: handler.NewVerificationHandler(client, manager, recorder, log),
		Support:      handler.NewSupportHandler(client, manager, recorder, log),
		Audit:        handler.NewAuditHandler(recorder),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(manager, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
