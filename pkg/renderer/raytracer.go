package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width           int   // Image width, 0 uses the camera's width
	Height          int   // Image height, 0 derives it from the aspect ratio
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Parallel workers, 0 uses the physical CPU count
	Seed            int64 // Worker i samples with Seed+i
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetWorld() geometry.Hittable
	GetLights() pdf.Target // nil when the scene has nothing to importance sample
	GetBackground() core.Vec3
	GetCameraConfig() CameraConfig
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  Scene
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Raytracer{
		scene:  scene,
		config: config,
		logger: logger,
	}
}

// imageSize resolves the output dimensions from the config and camera
func (rt *Raytracer) imageSize(cameraConfig CameraConfig) (int, int) {
	if rt.config.Width > 0 {
		cameraConfig.Width = rt.config.Width
	}
	width, height := cameraConfig.ImageSize()
	if rt.config.Height > 0 {
		height = rt.config.Height
	}
	return width, height
}

// Render traces SamplesPerPixel paths through every pixel, splitting the sample
// passes over independent workers, and returns the tone-mapped image.
// A cancelled context aborts the render and returns no image.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	cameraConfig := rt.scene.GetCameraConfig()
	width, height := rt.imageSize(cameraConfig)
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if rt.config.SamplesPerPixel <= 0 {
		return nil, RenderStats{}, fmt.Errorf("samples per pixel must be positive, got %d", rt.config.SamplesPerPixel)
	}

	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = DefaultWorkerCount()
	}
	numWorkers = min(numWorkers, rt.config.SamplesPerPixel)

	job := &renderJob{
		width:      width,
		height:     height,
		samples:    rt.config.SamplesPerPixel,
		numWorkers: numWorkers,
		seed:       rt.config.Seed,
		camera:     NewCamera(cameraConfig),
		integrator: integrator.NewPathTracingIntegrator(rt.config.MaxDepth, rt.scene.GetBackground()),
		world:      rt.scene.GetWorld(),
		lights:     rt.scene.GetLights(),
	}

	rt.logger.Printf("Rendering %dx%d, %d samples/pixel, depth %d, %d workers\n",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, numWorkers)
	start := time.Now()

	buffers := make([][]core.Vec3, numWorkers)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < numWorkers; i++ {
		g.Go(func() error {
			buffer, err := job.renderWorker(ctx, i)
			buffers[i] = buffer
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render aborted: %w", err)
	}

	pixels := mergeBuffers(buffers, 1.0/float64(rt.config.SamplesPerPixel))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			// Row j=0 is the bottom of the image
			img.SetRGBA(i, height-1-j, vec3ToColor(pixels[j*width+i]))
		}
	}

	stats := newRenderStats(width, height, rt.config.SamplesPerPixel, numWorkers, time.Since(start), pixels)
	rt.logger.Printf("Render complete in %v (mean luminance %.4f)\n", stats.Duration, stats.MeanLuminance)

	return img, stats, nil
}

// vec3ToColor converts a linear color to 8-bit RGBA with gamma 2 correction and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	return color.RGBA{
		R: toByte(colorVec.X),
		G: toByte(colorVec.Y),
		B: toByte(colorVec.Z),
		A: 255,
	}
}

// toByte maps a linear channel value to [0, 255]; NaN becomes 0
func toByte(value float64) uint8 {
	corrected := math.Sqrt(value)
	if math.IsNaN(corrected) {
		return 0
	}
	return uint8(256 * max(0, min(0.999, corrected)))
}
