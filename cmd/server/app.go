package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver

	"github.com/draftpilot/draftpilot-api/internal/config"
	"github.com/draftpilot/draftpilot-api/internal/generation"
	"github.com/draftpilot/draftpilot-api/internal/platform/gemini"
	"github.com/draftpilot/draftpilot-api/internal/platform/postgres"
	"github.com/draftpilot/draftpilot-api/internal/service"
	"github.com/draftpilot/draftpilot-api/internal/service/auth"
	"github.com/draftpilot/draftpilot-api/internal/store"
)

// application holds the server's wired dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	db *sql.DB

	jwtService      auth.JWTService
	generator       generation.Generator
	preferenceStore store.PreferenceStore
	draftService    service.DraftService
	extractService  service.ExtractService
}

// newApplication wires every dependency from configuration. It fails fast:
// an unreachable database or a rejected generation config means the server
// should not start.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (*application, error) {
	db, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	generator, err := gemini.NewGeminiGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	preferenceStore := postgres.NewPostgresPreferenceStore(db)
	draftService := service.NewDraftService(generator, preferenceStore, cfg.LLM, logger)
	extractService := service.NewExtractService(generator, cfg.LLM, logger)

	return &application{
		config:          cfg,
		logger:          logger,
		db:              db,
		jwtService:      jwtService,
		generator:       generator,
		preferenceStore: preferenceStore,
		draftService:    draftService,
		extractService:  extractService,
	}, nil
}

// openDatabase opens the connection pool and verifies connectivity.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
