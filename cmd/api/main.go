package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/gmfurtado/pixcards/internal/api/handlers"
	"github.com/gmfurtado/pixcards/internal/api/middleware"
	"github.com/gmfurtado/pixcards/internal/config"
	"github.com/gmfurtado/pixcards/internal/domain"
	infraBQ "github.com/gmfurtado/pixcards/internal/infra/bigquery"
	"github.com/gmfurtado/pixcards/internal/logger"
	"github.com/gmfurtado/pixcards/internal/template"
)

func main() {
	var (
		configPath = flag.String("config", "pixcards.yaml", "Path to the YAML config file")
		sample     = flag.Bool("sample", false, "Serve the built-in sample hierarchy instead of BigQuery")
	)
	flag.Parse()

	log := logger.New()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	ctx := context.Background()
	ctx = logger.WithContext(ctx, log)

	// Load the hierarchy snapshot once at startup. Administrative edits land
	// in a future snapshot; requests in flight keep the one they started with.
	snap, err := loadSnapshot(ctx, cfg, *sample)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load hierarchy snapshot")
	}
	log.Info().
		Int("states", len(snap.States)).
		Int("regionals", len(snap.Regionals)).
		Int("congregations", len(snap.Congregations)).
		Msg("Hierarchy snapshot loaded")

	templates := loadTemplates(cfg, log)

	handler := handlers.NewCardsHandler(func() *domain.Snapshot { return snap }, templates, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/hierarchy", handler.Hierarchy)
	mux.HandleFunc("/api/templates", handler.Templates)
	mux.HandleFunc("/api/resolve", handler.Resolve)
	mux.HandleFunc("/api/generate", handler.Generate)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Apply middleware
	wrapped := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.CORS(mux),
		),
	)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      wrapped,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func loadSnapshot(ctx context.Context, cfg config.Config, sample bool) (*domain.Snapshot, error) {
	if sample || cfg.ProjectID == "" {
		return domain.SampleSnapshot(), nil
	}

	repo, err := infraBQ.NewBigQueryHierarchyRepository(ctx, cfg.ProjectID, cfg.Dataset)
	if err != nil {
		return nil, err
	}
	defer repo.Close()

	return infraBQ.LoadSnapshot(ctx, repo)
}

func loadTemplates(cfg config.Config, log zerolog.Logger) []*template.Template {
	if cfg.TemplatesDir != "" {
		templates, err := template.LoadDir(cfg.TemplatesDir)
		if err == nil && len(templates) > 0 {
			log.Info().Int("count", len(templates)).Str("dir", cfg.TemplatesDir).Msg("Templates loaded")
			return templates
		}
		if err != nil {
			log.Warn().Err(err).Str("dir", cfg.TemplatesDir).Msg("Failed to load templates, using built-in default")
		}
	}
	return []*template.Template{template.Default()}
}
