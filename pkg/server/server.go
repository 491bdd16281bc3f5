// Package server implements the frame viewer's HTTP interface.
//
// The viewer shows one dataset at a time. Uploading a workbook replaces it;
// a failed upload clears it and reports why. Routes:
//
//	GET    /                  upload form, status line and the 3D view
//	GET    /view              the interactive 3D page on its own
//	POST   /api/upload        multipart field "file"
//	GET    /api/state         status of the current dataset
//	GET    /api/scene         scene JSON
//	GET    /api/topology.svg  plan-view topology diagram
//	DELETE /api/scene         clear the dataset
//	GET    /healthz           liveness
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rashika27/frameview/pkg/viewer"
)

// DefaultMaxUploadBytes caps upload bodies when Options leaves it unset.
const DefaultMaxUploadBytes = 32 << 20

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	MaxUploadBytes int64
}

// Server serves a viewer.Store over HTTP.
type Server struct {
	store     *viewer.Store
	logger    *log.Logger
	maxUpload int64
	router    chi.Router
}

// New builds the router for store.
func New(store *viewer.Store, opts Options, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	s := &Server{
		store:     store,
		logger:    logger,
		maxUpload: opts.MaxUploadBytes,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/view", s.handleView)
	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/upload", s.handleUpload)
		r.Get("/state", s.handleState)
		r.Get("/scene", s.handleScene)
		r.Delete("/scene", s.handleReset)
		r.Get("/topology.svg", s.handleTopology)
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("viewer listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
