package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// gifFrameDelay is the animation frame time in 100ths of a second
const gifFrameDelay = 4

// options holds the parsed command line
type options struct {
	scene     string
	width     int
	samples   int
	depth     int
	workers   int
	seed      int64
	frames    int
	animation string
	thumbnail int
	upload    bool
	envFile   string
	outputDir string
	imagePath string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "pathtracer",
		Short: "Monte Carlo path tracer",
		Long: "Renders a built-in scene to output/<scene>/render_<timestamp>.png, or to a\n" +
			"ping-pong GIF when more than one frame is requested.\n\n" +
			"Available scenes: " + strings.Join(scene.Names(), ", "),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := renderer.NewDefaultLogger()
			_, err := run(ctx, opts, logger)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.scene, "scene", "cornell", "Scene to render")
	flags.IntVar(&opts.width, "width", 0, "Image width in pixels (0 uses the scene's width)")
	flags.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 uses the scene's setting)")
	flags.IntVar(&opts.depth, "depth", 0, "Maximum bounce depth (0 uses the scene's setting)")
	flags.IntVar(&opts.workers, "workers", 0, "Parallel workers (0 uses PATHTRACER_WORKERS or the CPU count)")
	flags.Int64Var(&opts.seed, "seed", 42, "Random seed for the scene and the render")
	flags.IntVar(&opts.frames, "frames", 1, "Number of animation frames")
	flags.StringVar(&opts.animation, "animation", "sweep", "Camera path for animations: sweep, spring or orbit")
	flags.IntVar(&opts.thumbnail, "thumbnail", 0, "Also write a thumbnail with this maximum size")
	flags.BoolVar(&opts.upload, "upload", false, "Upload the result to the configured S3 bucket")
	flags.StringVar(&opts.envFile, "env-file", "", "Environment file to load (default .env if present)")
	flags.StringVar(&opts.outputDir, "output", "", "Output directory (default PATHTRACER_OUTPUT_DIR or output)")
	flags.StringVar(&opts.imagePath, "image", "", "Texture image for the earth scene")

	return cmd
}

// run renders according to opts and returns the path of the written file
func run(ctx context.Context, opts *options, logger core.Logger) (string, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return "", err
	}
	if opts.frames < 1 {
		return "", fmt.Errorf("frames must be at least 1, got %d", opts.frames)
	}

	s, err := createScene(opts)
	if err != nil {
		return "", err
	}
	renderConfig := buildRenderConfig(s, opts, cfg)

	outputDir := opts.outputDir
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	path := outputPath(outputDir, s.Name, opts.frames, time.Now())

	logger.Printf("Rendering scene %s to %s\n", s.Name, path)
	start := time.Now()

	var preview image.Image
	var encode func(io.Writer) error
	if opts.frames == 1 {
		img, stats, err := renderer.NewRaytracer(s, renderConfig, logger).Render(ctx)
		if err != nil {
			return "", err
		}
		logger.Printf("%d samples in %v (%.0f samples/s)\n", stats.TotalSamples, stats.Duration, stats.SamplesPerSecond())
		preview = img
		encode = func(w io.Writer) error { return output.WritePNG(w, img) }
	} else {
		cameraPath, err := renderer.NewCameraPath(opts.animation, s.CameraConfig, opts.frames)
		if err != nil {
			return "", err
		}
		frames, err := renderer.RenderAnimation(ctx, s, cameraPath, opts.frames, renderConfig, logger)
		if err != nil {
			return "", err
		}
		preview = frames[0]
		encode = func(w io.Writer) error { return output.WriteGIF(w, frames, gifFrameDelay) }
	}

	if err := output.SaveFile(path, encode); err != nil {
		return "", err
	}
	logger.Printf("Saved %s after %v\n", path, time.Since(start))

	files := []string{path}
	if opts.thumbnail > 0 {
		thumbPath := strings.TrimSuffix(path, filepath.Ext(path)) + "_thumb.png"
		thumb := output.Thumbnail(preview, opts.thumbnail)
		if err := output.SaveFile(thumbPath, func(w io.Writer) error { return output.WritePNG(w, thumb) }); err != nil {
			return "", err
		}
		files = append(files, thumbPath)
	}

	if opts.upload {
		if err := uploadFiles(ctx, cfg, s.Name, files, logger); err != nil {
			return "", err
		}
	}

	return path, nil
}

// createScene builds the requested scene
func createScene(opts *options) (*scene.Scene, error) {
	return scene.New(opts.scene, scene.Options{Seed: opts.seed, ImagePath: opts.imagePath})
}

// buildRenderConfig layers command line flags over the configuration and the scene's settings
func buildRenderConfig(s *scene.Scene, opts *options, cfg *config.Config) renderer.RenderConfig {
	renderConfig := s.RenderConfig()
	renderConfig.Seed = opts.seed
	renderConfig.Width = opts.width
	renderConfig.NumWorkers = cfg.Workers
	if opts.workers > 0 {
		renderConfig.NumWorkers = opts.workers
	}
	if opts.samples > 0 {
		renderConfig.SamplesPerPixel = opts.samples
	}
	if opts.depth > 0 {
		renderConfig.MaxDepth = opts.depth
	}
	return renderConfig
}

// outputPath returns <dir>/<scene>/render_<timestamp>.png, or .gif for animations
func outputPath(dir, sceneName string, frames int, now time.Time) string {
	ext := ".png"
	if frames > 1 {
		ext = ".gif"
	}
	return filepath.Join(dir, sceneName, "render_"+now.Format("20060102_150405")+ext)
}

// uploadFiles puts each file under <scene>/<name> in the configured bucket
func uploadFiles(ctx context.Context, cfg *config.Config, sceneName string, files []string, logger core.Logger) error {
	if !cfg.UploadEnabled() {
		return fmt.Errorf("upload requested but S3_BUCKET is not set")
	}
	uploader, err := output.NewS3Uploader(cfg.S3, logger)
	if err != nil {
		return err
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		key := sceneName + "/" + filepath.Base(file)
		if err := uploader.Upload(ctx, key, data, contentType(file)); err != nil {
			return err
		}
	}
	return nil
}

func contentType(file string) string {
	if filepath.Ext(file) == ".gif" {
		return "image/gif"
	}
	return "image/png"
}
