// Package server exposes the computed chart datasets over HTTP so
// external renderers can pull them. It serves data only; no drawing
// happens here.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/astrolab/aspectra/internal/ingest"
	"github.com/astrolab/aspectra/internal/palette"
)

// Config holds the server settings.
type Config struct {
	ListenAddr string
	Orb        float64
}

// Server serves chart datasets computed from one parsed table.
type Server struct {
	cfg      Config
	table    *ingest.Table
	logger   *zap.SugaredLogger
	handlers *Handlers
	http     http.Server
}

// New creates a chart data server for a parsed table.
func New(cfg Config, table *ingest.Table, logger *zap.SugaredLogger) *Server {
	if cfg.ListenAddr == "" {
		logger.Info("listen address not provided; defaulting to :8080")
		cfg.ListenAddr = ":8080"
	}

	s := &Server{
		cfg:    cfg,
		table:  table,
		logger: logger,
		handlers: &Handlers{
			table:     table,
			orb:       cfg.Orb,
			palette:   palette.New(),
			formatter: NewFormatter(),
			logger:    logger,
		},
	}
	s.http = http.Server{
		Addr:    cfg.ListenAddr,
		Handler: s.router(),
	}
	return s
}

func (s *Server) router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.requestLogger)

	router.HandleFunc("/healthz", s.handlers.Health).Methods(http.MethodGet)
	router.HandleFunc("/bodies", s.handlers.ListBodies).Methods(http.MethodGet)
	router.HandleFunc("/charts/longitude", s.handlers.LongitudeChart).Methods(http.MethodGet)
	router.HandleFunc("/charts/aspects/{ref}", s.handlers.AspectChart).Methods(http.MethodGet)
	return router
}

// Run starts the server and blocks until the context is canceled.
func (s *Server) Run(ctx context.Context, wg *sync.WaitGroup) error {
	wg.Add(1)
	defer wg.Done()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("chart data server listening on %s", s.cfg.ListenAddr)
		if err := s.http.ListenAndServe(); err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("chart data server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}

// requestLogger tags every request with an id and logs method, path,
// and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		next.ServeHTTP(w, r)

		s.logger.Infow("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
			"remote", r.RemoteAddr,
		)
	})
}
