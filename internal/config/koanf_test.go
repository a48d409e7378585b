// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Models.GradientBoostingDir != "models/gradient_boosting" {
		t.Errorf("Models.GradientBoostingDir = %q", cfg.Models.GradientBoostingDir)
	}
	if cfg.Models.TensorFlowDir != "models/tensorflow" {
		t.Errorf("Models.TensorFlowDir = %q", cfg.Models.TensorFlowDir)
	}
	if cfg.RateLimit.PredictPerMinute != 10 {
		t.Errorf("RateLimit.PredictPerMinute = %d, want 10", cfg.RateLimit.PredictPerMinute)
	}
	if cfg.RateLimit.DownloadPerDay != 5 {
		t.Errorf("RateLimit.DownloadPerDay = %d, want 5", cfg.RateLimit.DownloadPerDay)
	}
	if cfg.RateLimit.BlockDuration != 10*time.Minute {
		t.Errorf("RateLimit.BlockDuration = %v, want 10m", cfg.RateLimit.BlockDuration)
	}
	if cfg.Dataset.CacheTTL != 0 {
		t.Errorf("Dataset.CacheTTL = %v, want 0 (never expire)", cfg.Dataset.CacheTTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"GB_MODEL_DIR", "models.gradient_boosting_dir"},
		{"TF_MODEL_DIR", "models.tensorflow_dir"},
		{"DATASET_PATH", "dataset.path"},
		{"HTTP_PORT", "server.port"},
		{"API_KEY", "security.api_key"},
		{"LOG_LEVEL", "logging.level"},
		{"RATE_LIMIT_PREDICT_PER_MINUTE", "rate_limit.predict_per_minute"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "agro.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 6000\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	if got := findConfigFile(); got != path {
		t.Errorf("findConfigFile() = %q, want %q", got, path)
	}

	t.Setenv(ConfigPathEnvVar, filepath.Join(tmpDir, "missing.yaml"))
	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() with missing file = %q, want empty", got)
	}
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "none.yaml"))
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("GB_MODEL_DIR", "/srv/gb")
	t.Setenv("DATASET_PATH", "/srv/data/crops.csv")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_BLOCK_DURATION", "5m")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DATASET_CACHE_TTL", "1h")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Models.GradientBoostingDir != "/srv/gb" {
		t.Errorf("Models.GradientBoostingDir = %q, want /srv/gb", cfg.Models.GradientBoostingDir)
	}
	if cfg.Dataset.Path != "/srv/data/crops.csv" {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.RateLimit.BlockDuration != 5*time.Minute {
		t.Errorf("RateLimit.BlockDuration = %v, want 5m", cfg.RateLimit.BlockDuration)
	}
	if cfg.Dataset.CacheTTL != time.Hour {
		t.Errorf("Dataset.CacheTTL = %v, want 1h", cfg.Dataset.CacheTTL)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}

	// Untouched defaults survive.
	if cfg.Models.TensorFlowDir != "models/tensorflow" {
		t.Errorf("Models.TensorFlowDir = %q, want default", cfg.Models.TensorFlowDir)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 8080
  environment: testing
models:
  tensorflow_dir: /opt/models/tf
  preload: false
rate_limit:
  crops_per_minute: 40
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Environment != "testing" {
		t.Errorf("Server.Environment = %q, want testing", cfg.Server.Environment)
	}
	if cfg.Models.TensorFlowDir != "/opt/models/tf" {
		t.Errorf("Models.TensorFlowDir = %q", cfg.Models.TensorFlowDir)
	}
	if cfg.Models.Preload {
		t.Error("Models.Preload should be false from file")
	}
	if cfg.RateLimit.CropsPerMinute != 40 {
		t.Errorf("RateLimit.CropsPerMinute = %d, want 40", cfg.RateLimit.CropsPerMinute)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7070")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070 (env wins over file)", cfg.Server.Port)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port out of range", map[string]string{"HTTP_PORT": "70000"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "verbose"}},
		{"empty dataset path", map[string]string{"DATASET_PATH": " "}},
		{"short api key", map[string]string{"API_KEY": "short"}},
		{"wildcard cors in production", map[string]string{"ENVIRONMENT": "production"}},
		{"zero predict limit", map[string]string{"RATE_LIMIT_PREDICT_PER_MINUTE": "0"}},
		{"negative dataset cache ttl", map[string]string{"DATASET_CACHE_TTL": "-1m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "none.yaml"))
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadWithKoanf(); err == nil {
				t.Error("LoadWithKoanf() should fail validation")
			}
		})
	}
}

func TestValidateRateLimitsDisabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.RateLimit.Disabled = true
	cfg.RateLimit.PredictPerMinute = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled rate limits should skip bounds checks, got %v", err)
	}
}
