package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/foxzi/contentd/internal/config"
	"github.com/foxzi/contentd/internal/db"
	"github.com/foxzi/contentd/internal/metrics"
	"github.com/foxzi/contentd/internal/repository"
	"github.com/foxzi/contentd/internal/service"
)

// Server is the HTTP API server for the content endpoints.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	cfg        *config.Config
	logger     *slog.Logger
	db         *db.DB

	campaigns *service.CampaignService
	news      *service.NewsService
	faqs      *service.FaqService
	contacts  *service.ContactService

	version   string
	startTime time.Time
}

// NewServer wires repositories, services and routes on top of an open
// database.
func NewServer(cfg *config.Config, database *db.DB, logger *slog.Logger, version string) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		cfg:       cfg,
		logger:    logger,
		db:        database,
		version:   version,
		startTime: time.Now(),
	}

	s.campaigns = service.NewCampaignService(repository.NewCampaignRepository(database.DB), logger)
	s.news = service.NewNewsService(repository.NewNewsRepository(database.DB), logger)
	s.faqs = service.NewFaqService(repository.NewFaqRepository(database.DB), logger)
	s.contacts = service.NewContactService(repository.NewContactRepository(database.DB), cfg.Contact.EstimatedResponseTime, logger)

	s.setupRoutes()
	return s
}

// setupRoutes configures the HTTP routes
func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(middleware.RealIP)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	s.router.Use(s.loggingMiddleware)
	s.router.Use(metrics.HTTPMiddleware)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/health", s.handleHealth)

	if s.cfg.Metrics.Enabled {
		if m := metrics.Global(); m != nil {
			s.router.Method(http.MethodGet, s.cfg.Metrics.Path, m.Handler())
		}
	}

	s.router.Route("/campaigns", func(r chi.Router) {
		r.Get("/", s.handleListCampaigns)
		r.Get("/{id}", s.handleGetCampaign)
		r.Get("/{id}/validity", s.handleCampaignValidity)
	})

	s.router.Route("/news", func(r chi.Router) {
		r.Get("/", s.handleListNews)
		r.Get("/{id}", s.handleGetNews)
	})

	s.router.Route("/faq", func(r chi.Router) {
		r.Get("/", s.handleListFaqs)
		r.Get("/{id}", s.handleGetFaq)
	})

	s.router.Route("/contact", func(r chi.Router) {
		r.Post("/", s.handleSubmitContact)
		r.Get("/categories", s.handleContactCategories)
	})
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe() error {
	s.httpServer = &http.Server{
		Addr:         s.cfg.Server.ListenAddr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting HTTP API server", "addr", s.cfg.Server.ListenAddr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP API server")
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
