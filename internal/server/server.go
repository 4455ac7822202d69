package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/globe-explorer/internal/embed"
	"github.com/ziadkadry99/globe-explorer/internal/snapshot"
	"github.com/ziadkadry99/globe-explorer/internal/states"
	"github.com/ziadkadry99/globe-explorer/internal/theme"
)

// Config holds server configuration.
type Config struct {
	Port      int
	StaticDir string // directory with the web app; empty serves the built-in page
	AllowAll  bool   // allow all CORS origins (dev mode)
	Theme     theme.Config
	Snapshot  snapshot.Options
}

// Server serves the globe web app and its data API.
type Server struct {
	cfg        Config
	source     states.Source
	log        zerolog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server reading records from source.
func New(cfg Config, source states.Source, log zerolog.Logger) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		source: source,
		log:    log.With().Str("component", "server").Logger(),
	}
	static, err := s.staticHandler()
	if err != nil {
		return nil, err
	}
	s.router = s.buildRouter(static)
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter(static http.Handler) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/api/theme", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(s.cfg.Theme)
	})

	states.RegisterRoutes(r, s.source, s.log)
	embed.RegisterRoutes(r, s.source, s.cfg.Theme, s.log)
	snapshot.RegisterRoutes(r, s.source, s.cfg.Snapshot, s.log)

	r.NotFound(static.ServeHTTP)
	// A GET on a path that only has other methods, such as /api/embed,
	// still gets the web app.
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		if req.Method == http.MethodGet || req.Method == http.MethodHead {
			static.ServeHTTP(w, req)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"error":"Method not allowed"}`))
	})
	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info().Str("addr", addr).Msg("globe server listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
