package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/web/server"
)

// shutdownTimeout bounds how long in-flight renders may finish after a signal
const shutdownTimeout = 10 * time.Second

type serveOptions struct {
	envFile string
	address string
}

func main() {
	if err := newServeCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newServeCommand() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:          "pathtracer-web",
		Short:        "HTTP API for rendering and inspecting the built-in scenes",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, opts, renderer.NewDefaultLogger())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.envFile, "env-file", "", "Environment file to load (default .env if present)")
	flags.StringVar(&opts.address, "addr", "", "Address to serve on (default PATHTRACER_SERVER_ADDRESS or :8080)")

	return cmd
}

// serve runs the web server until ctx is cancelled, then shuts it down gracefully
func serve(ctx context.Context, opts *serveOptions, logger core.Logger) error {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return err
	}
	if opts.address != "" {
		cfg.ServerAddress = opts.address
	}

	webServer := server.NewServer(cfg.ServerAddress, cfg.Workers, logger)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := webServer.Shutdown(shutdownCtx); err != nil {
			logger.Printf("Error shutting down: %v\n", err)
		}
	}()

	logger.Printf("Path tracer web server, try http://localhost%s/api/scenes\n", cfg.ServerAddress)
	return webServer.Start()
}
