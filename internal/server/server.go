package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"overlayd/internal/fetch"
)

// Config configures a Server.
type Config struct {
	// Addr is the listen address (default: ":8080").
	Addr string

	// Logger for request and error messages (default: slog.Default()).
	Logger *slog.Logger

	// Fetcher retrieves source images. Required.
	Fetcher *fetch.Fetcher
}

func (c *Config) defaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Fetcher == nil {
		c.Fetcher = fetch.New(fetch.Config{})
	}
}

// Server is the HTTP front end of the overlay pipeline.
type Server struct {
	addr    string
	log     *slog.Logger
	fetcher *fetch.Fetcher
	router  *chi.Mux
}

// New creates a Server and wires its routes.
func New(cfg Config) *Server {
	cfg.defaults()

	s := &Server{
		addr:    cfg.Addr,
		log:     cfg.Logger,
		fetcher: cfg.Fetcher,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/image", s.handleImage)
	r.Get("/palette", s.handlePalette)
	r.Get("/healthz", s.handleHealthz)

	s.router = r
	return s
}

// Handler returns the server's root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info("server started", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("server stopping")
		return srv.Shutdown(shutCtx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
