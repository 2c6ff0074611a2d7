package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// RenderRequest holds the query parameters of a render; zero values mean the scene's defaults
type RenderRequest struct {
	Scene   string
	Width   int
	Samples int
	Depth   int
	Seed    int64
}

// parseRenderRequest validates the query. Errors are client errors.
func parseRenderRequest(c echo.Context) (RenderRequest, error) {
	req := RenderRequest{Scene: c.QueryParam("scene"), Seed: 42}
	if req.Scene == "" {
		return req, errors.New("scene is required")
	}

	var err error
	if req.Width, err = intParam(c, "width", MaxWidth); err != nil {
		return req, err
	}
	if req.Samples, err = intParam(c, "samples", MaxSamples); err != nil {
		return req, err
	}
	if req.Depth, err = intParam(c, "depth", MaxDepth); err != nil {
		return req, err
	}
	if seed := c.QueryParam("seed"); seed != "" {
		if req.Seed, err = strconv.ParseInt(seed, 10, 64); err != nil {
			return req, fmt.Errorf("invalid seed %q", seed)
		}
	}
	return req, nil
}

// intParam reads an optional positive integer no larger than limit; absent is 0
func intParam(c echo.Context, name string, limit int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	if value < 1 || value > limit {
		return 0, fmt.Errorf("%s must be between 1 and %d, got %d", name, limit, value)
	}
	return value, nil
}

// loadScene builds the requested scene, mapping unknown names to 404
func loadScene(name string, seed int64) (*scene.Scene, error) {
	s, err := scene.New(name, scene.Options{Seed: seed})
	if errors.Is(err, scene.ErrUnknownScene) {
		return nil, echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return s, nil
}

// handleRender renders a scene and returns it as PNG
func (s *Server) handleRender(c echo.Context) error {
	req, err := parseRenderRequest(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sceneObj, err := loadScene(req.Scene, req.Seed)
	if err != nil {
		return err
	}

	config := sceneObj.RenderConfig()
	config.Width = req.Width
	config.Seed = req.Seed
	config.NumWorkers = s.workers
	if req.Samples > 0 {
		config.SamplesPerPixel = req.Samples
	}
	if req.Depth > 0 {
		config.MaxDepth = req.Depth
	}
	if req.Width == 0 {
		config.Width = min(sceneObj.CameraConfig.Width, MaxWidth)
	}

	camera := sceneObj.CameraConfig
	camera.Width = config.Width
	if width, height := camera.ImageSize(); height < 1 {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("width %d gives an empty image for aspect ratio %.3f", width, camera.AspectRatio))
	}

	logger := newRenderLogger(s.renders.Add(1), s.logger)
	img, stats, err := renderer.NewRaytracer(sceneObj, config, logger).Render(c.Request().Context())
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		// The client went away
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var buf bytes.Buffer
	if err := output.WritePNG(&buf, img); err != nil {
		return err
	}

	c.Response().Header().Set("X-Render-Duration", stats.Duration.String())
	c.Response().Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
