package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/quadflash/backend/internal/api"
	"github.com/quadflash/backend/internal/grader"
	"github.com/quadflash/backend/internal/infrastructure/config"
	"github.com/quadflash/backend/internal/infrastructure/logging"
	"github.com/quadflash/backend/internal/service"
	"github.com/quadflash/backend/internal/store"

	_ "github.com/quadflash/backend/docs" // generated swagger docs
)

// @title           QuadFlash API
// @version         1.0
// @description     Local flashcard study tool: load a question set, practice with shuffled options, flag and annotate questions.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFile)

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	g, err := grader.FromName(cfg.AnswerMatch)
	if err != nil {
		logger.Error("invalid answer matching mode", "error", err)
		os.Exit(1)
	}

	persist := service.NewPersistence(db, cfg.StorageKey, cfg.SaveLatency, logger)
	session := service.NewSessionController(persist, g, logger)
	defer session.Close()

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 5*time.Second)
	session.LoadInitial(loadCtx)
	cancelLoad()

	handler := api.NewHandler(session, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	idle := make(chan struct{})
	go func() {
		defer close(idle)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
		if err := session.Flush(ctx); err != nil {
			logger.Warn("pending saves not flushed", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "db", cfg.DBPath)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
	<-idle
}
