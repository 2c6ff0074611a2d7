package server

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Request limits for on-demand renders
const (
	MaxWidth   = 1024
	MaxSamples = 1000
	MaxDepth   = 200
)

// Server exposes scene listing, rendering and pixel inspection over HTTP
type Server struct {
	echo    *echo.Echo
	address string
	workers int
	logger  core.Logger
	renders atomic.Uint64 // Render IDs for log prefixes
}

// NewServer creates a server listening on address. workers is the render
// parallelism, 0 for the CPU count.
func NewServer(address string, workers int, logger core.Logger) *Server {
	if logger == nil {
		logger = renderer.NopLogger{}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(corsMiddleware)

	s := &Server{echo: e, address: address, workers: workers, logger: logger}
	e.GET("/api/health", s.handleHealth)
	e.GET("/api/scenes", s.handleScenes)
	e.GET("/api/render", s.handleRender)
	e.GET("/api/inspect", s.handleInspect)
	return s
}

// Handler returns the HTTP handler serving the API
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.logger.Printf("Starting web server on %s\n", s.address)
	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight renders until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		c.Response().Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}
		return next(c)
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scene names
func (s *Server) handleScenes(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"scenes": scene.Names()})
}
