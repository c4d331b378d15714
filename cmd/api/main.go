package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"datacraft/adapters/llm"
	"datacraft/adapters/memory"
	"datacraft/adapters/postgres"
	"datacraft/adapters/postgres/migrations"
	"datacraft/app"
	"datacraft/internal"
	"datacraft/internal/config"
	"datacraft/ports"
	"datacraft/ui"
)

func main() {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logger := internal.NewDefaultLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := buildRepository(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	var schemaGen ports.SchemaGeneratorPort
	if cfg.AI.GeminiKey != "" {
		adapter, err := llm.NewSchemaAdapter(llm.Config{
			APIKey:      cfg.AI.GeminiKey,
			Model:       cfg.AI.Model,
			Temperature: cfg.AI.Temperature,
			MaxTokens:   cfg.AI.MaxTokens,
			Timeout:     cfg.AI.Timeout,
		})
		if err != nil {
			logger.Warn("model service disabled: %v", err)
		} else {
			schemaGen = adapter
			logger.Info("prompt generation enabled (model %s)", cfg.AI.Model)
		}
	} else {
		logger.Info("GEMINI_API_KEY not set; prompt generation uses the default schema")
	}

	generator := app.NewGeneratorService(repo, schemaGen, logger)
	analyzer := app.NewAnalyzerService(logger)
	server := ui.NewServer(cfg.Server, generator, analyzer, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed: %v", err)
	}
}

// buildRepository connects postgres when configured, falling back to the
// in-memory store otherwise.
func buildRepository(ctx context.Context, cfg *config.Config, logger *internal.Logger) (ports.DatasetRepository, error) {
	if cfg.Database.URL == "" {
		logger.Warn("DATABASE_URL not set; saved datasets are kept in memory")
		return memory.NewDatasetRepository(), nil
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	if err := migrations.NewMigrator(db.DB).Up(ctx); err != nil {
		return nil, err
	}
	logger.Info("connected to postgres")
	return postgres.NewDatasetRepository(db), nil
}
