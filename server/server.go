package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/moko271/design-thinking-grarec/api"
	"github.com/moko271/design-thinking-grarec/config"
	"github.com/moko271/design-thinking-grarec/log"
	"github.com/moko271/design-thinking-grarec/vendors"
)

// Server owns and coordinates all application components
type Server struct {
	cfg    *config.Config
	openai *vendors.OpenAIClient

	router *gin.Engine
	http   *http.Server
}

// New creates a new server with all components initialized
func New(cfg *config.Config) *Server {
	s := &Server{cfg: cfg}

	s.openai = vendors.NewOpenAI(cfg)
	s.setupRouter()

	log.Info().Msg("server initialized")
	return s
}

// setupRouter creates and configures the Gin router
func (s *Server) setupRouter() {
	// Gin's own debug logging is off; zerolog handles request logs
	if !s.cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = gin.New()

	// Middleware
	s.router.Use(gin.Recovery())
	s.router.Use(requestIDMiddleware())
	s.router.Use(log.GinLogger())

	// CORS for development
	if s.cfg.IsDevelopment() {
		s.router.Use(corsMiddleware())
	}

	// Security headers (production only)
	if !s.cfg.IsDevelopment() {
		s.router.Use(securityHeadersMiddleware())
	}

	// Gzip compression
	s.router.Use(gzip.Gzip(gzip.DefaultCompression))

	// Trust proxy headers
	s.router.SetTrustedProxies(nil)

	// Ignore .well-known requests (Chrome DevTools, etc.)
	s.router.GET("/.well-known/*path", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	api.SetupRoutes(s.router, api.NewHandlers(s.cfg, s.openai))
}

// Start starts the HTTP server and blocks until it exits
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:     fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:  s.router,
		ErrorLog: log.StdErrorLogger(), // Route Go's internal HTTP errors through zerolog
	}

	log.Info().
		Str("addr", s.http.Addr).
		Str("env", s.cfg.Env).
		Msg("HTTP server starting")

	return s.http.ListenAndServe()
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("shutting down server")

	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("http server shutdown error")
			return err
		}
	}

	log.Info().Msg("server shutdown complete")
	return nil
}

// Router returns the Gin engine, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}
