package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv unsets the configuration variables for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PATHTRACER_OUTPUT_DIR", "PATHTRACER_WORKERS", "PATHTRACER_SERVER_ADDRESS",
		"S3_ENDPOINT", "S3_REGION", "S3_BUCKET", "S3_ACCESS_KEY", "S3_SECRET_KEY",
	} {
		if value, ok := os.LookupEnv(key); ok {
			os.Unsetenv(key)
			t.Cleanup(func() { os.Setenv(key, value) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
	}
}

func writeEnvFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir()) // No .env in the working directory

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "output" || cfg.Workers != 0 || cfg.ServerAddress != ":8080" {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
	if cfg.S3.Region != "us-east-1" || cfg.UploadEnabled() {
		t.Errorf("Unexpected S3 defaults %+v", cfg.S3)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "PATHTRACER_OUTPUT_DIR=renders\nPATHTRACER_WORKERS=3\nS3_BUCKET=images\nS3_ENDPOINT=http://minio:9000\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "renders" || cfg.Workers != 3 {
		t.Errorf("Env file not applied: %+v", cfg)
	}
	if !cfg.UploadEnabled() || cfg.S3.Endpoint != "http://minio:9000" {
		t.Errorf("S3 settings not applied: %+v", cfg.S3)
	}
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PATHTRACER_OUTPUT_DIR", "from-env")
	path := writeEnvFile(t, "PATHTRACER_OUTPUT_DIR=from-file\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "from-env" {
		t.Errorf("Expected the environment to win, got %q", cfg.OutputDir)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		workers string
	}{
		{"not a number", "many"},
		{"negative", "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("PATHTRACER_WORKERS", tt.workers)
			if _, err := Load(writeEnvFile(t, "")); err == nil {
				t.Errorf("Expected an error for PATHTRACER_WORKERS=%q", tt.workers)
			}
		})
	}

	t.Run("missing named file", func(t *testing.T) {
		clearEnv(t)
		if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
			t.Error("Expected an error for a missing env file")
		}
	})
}
