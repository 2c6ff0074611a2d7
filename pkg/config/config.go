package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-pathtracer/pkg/output"
)

// DefaultEnvFile is read when no env file is named; it may be absent
const DefaultEnvFile = ".env"

// Config holds the process settings shared by the CLI and the web server
type Config struct {
	OutputDir     string
	Workers       int // 0 uses the physical CPU count
	ServerAddress string
	S3            output.S3Config
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

// Load reads envFile into the environment, without overriding variables that
// are already set, and builds the configuration. An empty envFile means the
// optional DefaultEnvFile.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", DefaultEnvFile, err)
		}
	} else if err := godotenv.Load(envFile); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
	}

	workers, err := getEnvInt("PATHTRACER_WORKERS", 0)
	if err != nil {
		return nil, err
	}
	if workers < 0 {
		return nil, fmt.Errorf("PATHTRACER_WORKERS must not be negative, got %d", workers)
	}

	return &Config{
		OutputDir:     getEnv("PATHTRACER_OUTPUT_DIR", "output"),
		Workers:       workers,
		ServerAddress: getEnv("PATHTRACER_SERVER_ADDRESS", ":8080"),
		S3: output.S3Config{
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			Region:    getEnv("S3_REGION", "us-east-1"),
			Bucket:    os.Getenv("S3_BUCKET"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
		},
	}, nil
}

// UploadEnabled reports whether an S3 bucket is configured
func (c *Config) UploadEnabled() bool {
	return c.S3.Bucket != ""
}
