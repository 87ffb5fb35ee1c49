package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/topservice/pesquisas-api/internal/board"
	"github.com/topservice/pesquisas-api/internal/config"
	"github.com/topservice/pesquisas-api/internal/observability"
	"github.com/topservice/pesquisas-api/internal/repository"
	"github.com/topservice/pesquisas-api/internal/store"
)

// Server wires HTTP routing, middleware, and handlers.
type Server struct {
	cfg     config.Config
	store   *store.Store
	repo    *repository.Repository
	board   board.Client
	logger  *log.Logger
	router  chi.Router
	httpSrv *http.Server
}

// New constructs the HTTP server with base middleware and routes.
func New(cfg config.Config, st *store.Store, repo *repository.Repository, boardClient board.Client, logger *log.Logger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		cfg:    cfg,
		store:  st,
		repo:   repo,
		board:  boardClient,
		logger: logger,
		router: r,
	}
	observability.Register()
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Method(http.MethodGet, "/metrics", observability.Handler())

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/webhook/create", s.handleWebhookCreate)
		r.Post("/webhook/delete", s.handleWebhookDelete)
		r.Post("/salvarchave", s.handleSaveAccessKey)

		r.Get("/items", s.handleListItems)
		r.Get("/items/{itemID}", s.handleGetItem)
		r.Get("/columns", s.handleListColumns)
		r.Get("/columns/board/{boardID}", s.handleListBoardColumns)

		r.Get("/evaluation/{searchID}", s.handleEvaluation)
		r.Get("/rating-distribution/{searchID}", s.handleRatingDistribution)

		r.Route("/pesquisas-top", func(r chi.Router) {
			r.Get("/evaluation/{key}", s.handleGuestEvaluation)
			r.Get("/distribution/{key}", s.handleGuestDistribution)
		})

		r.Get("/fornecedores", s.handleSupplierSearch)
	})
}

// Start boots the HTTP server and blocks until the context is canceled or
// the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.IdleTimeoutSecs) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpSrv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

type healthResponse struct {
	Status string    `json:"status"`
	Pool   poolStats `json:"pool"`
}

type poolStats struct {
	TotalConns    int32 `json:"totalConns"`
	AcquiredConns int32 `json:"acquiredConns"`
	IdleConns     int32 `json:"idleConns"`
	MaxConns      int32 `json:"maxConns"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.HealthCheck(ctx); err != nil {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}

	resp := healthResponse{Status: "ok"}
	if stats := s.store.Stats(); stats != nil {
		resp.Pool = poolStats{
			TotalConns:    stats.TotalConns(),
			AcquiredConns: stats.AcquiredConns(),
			IdleConns:     stats.IdleConns(),
			MaxConns:      stats.MaxConns(),
		}
	}
	s.respondJSON(w, http.StatusOK, resp)
}
