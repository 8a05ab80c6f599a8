// Package httpapi serves the analytics document over HTTP. The read endpoint
// takes no query parameters: filtering and KPI aggregation happen client-side
// over the fetched trend sequence.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"revos/internal/config"
	"revos/internal/dataset"
	"revos/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Server wires the repository and the session dataset store into HTTP routes.
type Server struct {
	cfg   *config.AppConfig
	repo  *repository.JSONRepository
	store *dataset.Store
}

// New creates a Server.
func New(cfg *config.AppConfig, repo *repository.JSONRepository, store *dataset.Store) *Server {
	return &Server{cfg: cfg, repo: repo, store: store}
}

// Router builds the route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/health", s.handleHealth)
	r.Route("/api/analytics", func(r chi.Router) {
		r.Get("/dashboard", s.handleDashboard)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Int("port", s.cfg.Port).Str("db", s.repo.Path()).Msg("Dashboard API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if s.cfg.OpenBrowser {
		url := fmt.Sprintf("http://localhost:%d/api/analytics/dashboard", s.cfg.Port)
		if err := browser.OpenURL(url); err != nil {
			log.Warn().Err(err).Str("url", url).Msg("Failed to open browser")
		}
	}

	return g.Wait()
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	})
}
