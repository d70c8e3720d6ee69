package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/datosprovida/dashboard/internal/config"
	"github.com/datosprovida/dashboard/internal/logger"
	"github.com/datosprovida/dashboard/internal/middleware"
	"github.com/datosprovida/dashboard/internal/ui/layout"
	"github.com/datosprovida/dashboard/internal/ui/pages"
)

// StaticDir is served under /static/
const StaticDir = "./web/static/"

type Server struct {
	router   *chi.Mux
	config   *config.Config
	logger   *slog.Logger
	metadata layout.Metadata
}

func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	s := &Server{
		router:   chi.NewRouter(),
		config:   cfg,
		logger:   logger,
		metadata: layout.DefaultMetadata(cfg.PublicBaseURL),
	}

	if err := s.setupMiddleware(); err != nil {
		return nil, err
	}
	s.registerRoutes()

	return s, nil
}

// Router returns the server's handler (used by tests and when mounting the dashboard in another server)
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() error {
	cors, err := middleware.NewCORS(s.config.AllowedOrigins, config.CORSMaxAgeInSeconds*time.Second)
	if err != nil {
		return err
	}

	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(chimiddleware.Timeout(config.RequestTimeout))
	s.router.Use(middleware.SecurityHeaders(s.config.Environment))
	s.router.Use(cors)
	s.router.Use(middleware.RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))

	return nil
}

func (s *Server) registerRoutes() {
	s.router.Get("/health/live", s.handleLiveness)

	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(StaticDir))))
	s.router.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(StaticDir, "favicon.ico"))
	})

	s.router.Get("/", s.handleHome)
	s.router.NotFound(s.handleNotFound)
}

func (s *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	logger.ContextWithLogAttrs(r.Context(), slog.String("page", "home"))
	s.render(w, r, http.StatusOK, pages.Home(s.metadata))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, pages.NotFound(s.metadata))
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := component.Render(r.Context(), w); err != nil {
		logger.ContextRequestLogger(r.Context()).Error("Failed to render page", slog.String("error", err.Error()))
	}
}

// Start runs the server until ctx is cancelled and then shuts it down gracefully
func (s *Server) Start(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server failed to start: %w", err)
	}

	return s.serve(ctx, listener)
}

func (s *Server) serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard listening", slog.String("address", listener.Addr().String()))
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		s.logger.Info("Shutting down dashboard server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
			return err
		}
	}

	return nil
}
