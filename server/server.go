// Package server wires the handlers into an HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/LianHaeming/weekplan/handlers"
)

// ShutdownTimeout bounds how long in-flight requests get after Run's
// context is canceled.
const ShutdownTimeout = 10 * time.Second

// Server serves the planner UI and API.
type Server struct {
	deps       *handlers.Deps
	logger     *zap.Logger
	router     *mux.Router
	httpServer *http.Server
}

// New builds a server with all routes registered.
func New(deps *handlers.Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
		deps.Logger = logger
	}
	s := &Server{
		deps:   deps,
		logger: logger,
		router: mux.NewRouter(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware, s.loggingMiddleware, s.recoverMiddleware)

	// Pages
	s.router.HandleFunc("/", s.deps.HandleHome).Methods(http.MethodGet)
	s.router.HandleFunc("/plan", s.deps.HandleGeneratePlan).Methods(http.MethodPost)
	// Reloading the result page lands back on the empty form
	s.router.Handle("/plan", http.RedirectHandler("/", http.StatusSeeOther)).Methods(http.MethodGet)

	// API
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/plan", s.deps.HandleAPIPlan).Methods(http.MethodPost)

	s.router.HandleFunc("/healthz", s.deps.HandleHealth).Methods(http.MethodGet)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("weekplan listening", zap.String("addr", ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
