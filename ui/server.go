package ui

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"datacraft/app"
	"datacraft/internal"
	"datacraft/internal/config"
)

// Server is the JSON API consumed by the generator and analyzer pages.
type Server struct {
	router    *chi.Mux
	generator *app.GeneratorService
	analyzer  *app.AnalyzerService
	log       *internal.Logger
}

// NewServer builds the HTTP server and its routes.
func NewServer(cfg config.ServerConfig, generator *app.GeneratorService, analyzer *app.AnalyzerService, log *internal.Logger) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		generator: generator,
		analyzer:  analyzer,
		log:       log,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(120 * time.Second))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/templates", s.handleListTemplates)

		r.Route("/datasets", func(r chi.Router) {
			r.Post("/generate", s.handleGenerate)
			r.Post("/generate-template", s.handleGenerateTemplate)
			r.Post("/generate-prompt", s.handleGeneratePrompt)
			r.Post("/stats", s.handleStats)
			r.Post("/export/{format}", s.handleExport)

			r.Post("/", s.handleSave)
			r.Get("/", s.handleList)
			r.Get("/{id}", s.handleGet)
			r.Delete("/{id}", s.handleDelete)
		})

		r.Post("/analyze", s.handleAnalyze)
	})
}

// Router exposes the handler for mounting and tests.
func (s *Server) Router() http.Handler {
	return s.router
}
