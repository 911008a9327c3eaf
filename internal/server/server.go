package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/angeloflores/folio/internal/content"
	"github.com/angeloflores/folio/internal/page"
	"github.com/angeloflores/folio/internal/preferences"
	"github.com/angeloflores/folio/internal/theme"
)

// Config holds server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string // CORS origins for /api; empty allows localhost only
	AssetsDir      string   // directory served under /assets
	CookieMaxAge   time.Duration
	SecureCookies  bool
	RateLimit      float64 // theme writes per second per client; 0 disables
	RateBurst      int
	LiveSync       bool
}

// Server renders the portfolio page and serves the theme API.
type Server struct {
	cfg        Config
	logger     *zap.Logger
	content    *content.Content
	prefs      *preferences.Store
	renderer   *page.Renderer
	hub        *Hub
	upgrader   websocket.Upgrader
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. prefs selects SQLite-backed theme storage; when nil
// preferences live in the visitor's theme cookie.
func New(cfg Config, logger *zap.Logger, site *content.Content, prefs *preferences.Store) (*Server, error) {
	if site == nil {
		return nil, fmt.Errorf("server: content is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	renderer, err := page.NewRenderer()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		content:  site,
		prefs:    prefs,
		renderer: renderer,
		hub:      NewHub(),
	}
	s.router = s.buildRouter()
	s.recordStoredPreferences(context.Background())
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware(s.logger, []string{"/healthz", "/metrics"}))
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware)
	r.Use(VisitorMiddleware(s.cfg.SecureCookies))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	// Long-lived connections stay outside the request timeout.
	r.Get("/ws/theme", s.handleThemeSocket)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Group(func(r chi.Router) {
			r.Use(ClientHintsMiddleware)
			r.Get("/", s.handlePage)
			r.Get("/sections/{id}", s.handleSection)
		})

		r.Get("/static/style.css", serveConst("text/css; charset=utf-8", page.CSS))
		r.Get("/static/script.js", serveConst("text/javascript; charset=utf-8", page.Script))
		r.Get("/static/bootstrap.js", serveConst("text/javascript; charset=utf-8", page.Bootstrap))

		if s.cfg.AssetsDir != "" {
			if info, err := os.Stat(s.cfg.AssetsDir); err == nil && info.IsDir() {
				fs := http.StripPrefix("/assets/", http.FileServer(http.Dir(s.cfg.AssetsDir)))
				r.Handle("/assets/*", fs)
			} else {
				s.logger.Warn("assets directory not found, /assets disabled", zap.String("dir", s.cfg.AssetsDir))
			}
		}

		r.Route("/api", func(r chi.Router) {
			r.Use(cors.Handler(s.corsOptions()))
			r.Get("/content", s.handleContent)
			r.Get("/theme", s.handleGetTheme)
			r.Group(func(r chi.Router) {
				if s.cfg.RateLimit > 0 {
					r.Use(RateLimitMiddleware(s.cfg.RateLimit, s.cfg.RateBurst))
				}
				r.Put("/theme", s.handlePutTheme)
				r.Delete("/theme", s.handleDeleteTheme)
			})
		})
	})

	return r
}

func (s *Server) corsOptions() cors.Options {
	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", theme.ClientHintHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Run listens on the configured port and serves until ctx is cancelled. It
// then shuts down, waiting up to grace for in-flight requests, and returns
// only once they have drained.
func (s *Server) Run(ctx context.Context, grace time.Duration) error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	s.logger.Info("folio server listening", zap.String("addr", addr))
	return s.serve(ctx, ln, grace)
}

func (s *Server) serve(ctx context.Context, ln net.Listener, grace time.Duration) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	// Hijacked websocket connections are not tracked by Shutdown.
	s.httpServer.RegisterOnShutdown(s.hub.CloseAll)

	errCh := make(chan error, 1)
	go func() { errCh <- s.httpServer.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
