package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/kamal-hamza/content-hub/internal/core/services"
)

type Server struct {
	*http.Server
	logger      zerolog.Logger
	startupTime time.Time
}

type router struct {
	logger         zerolog.Logger
	allowedOrigins []string
	startupTime    time.Time
	now            func() time.Time
}

// Option configures the router
type Option func(*router)

func WithLogger(logger zerolog.Logger) Option {
	return func(r *router) {
		r.logger = logger
	}
}

func WithAllowedOrigins(origins []string) Option {
	return func(r *router) {
		r.allowedOrigins = origins
	}
}

func withClock(now func() time.Time) Option {
	return func(r *router) {
		r.now = now
	}
}

func NewServer(addr string, list *services.ListService, stats *services.StatsService, opts ...Option) Server {
	startupTime := time.Now()
	opts = append([]Option{withStartupTime(startupTime)}, opts...)

	handler, logger := newRouter(list, stats, opts...)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return Server{server, logger, startupTime}
}

func withStartupTime(startupTime time.Time) Option {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

// NewRouter builds the handler tree without a listening server
func NewRouter(list *services.ListService, stats *services.StatsService, opts ...Option) http.Handler {
	handler, _ := newRouter(list, stats, opts...)
	return handler
}

func newRouter(list *services.ListService, stats *services.StatsService, opts ...Option) (*chi.Mux, zerolog.Logger) {
	r := router{
		logger:         zerolog.Nop(),
		allowedOrigins: []string{"*"},
		startupTime:    time.Now(),
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(&r)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(RequestID)
	chiRouter.Use(LogInternalServerErrors(r.logger))
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins: r.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	handlers := &routeHandlers{
		catalogHandler: newCatalogHandler(r.logger, list, stats, r.startupTime),
		pageHandler:    newPageHandler(r.logger, list, r.now),
	}
	setupRoutes(chiRouter, handlers, r.logger)

	return chiRouter, r.logger
}

// Run listens on s.Addr until ctx is cancelled, then shuts down gracefully
func (s Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.Addr, err)
	}
	return s.Serve(ctx, ln, shutdownTimeout)
}

// Serve accepts connections on ln until ctx is cancelled
func (s Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Msgf("Server started on: %s", ln.Addr())
		if err := s.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return s.ShutdownGracefully(shutdownTimeout)
	})

	return g.Wait()
}

func (s Server) ShutdownGracefully(timeout time.Duration) error {
	s.logger.Info().Msg("Gracefully shutting down...")

	gracefulCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefulCtx); err != nil {
		s.logger.Error().Msgf("Error shutting down the server: %v", err)
		return fmt.Errorf("shutdown failed: %w", err)
	}

	s.logger.Info().Msg("HttpServer gracefully shut down")
	return nil
}
