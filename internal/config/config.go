// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package config

import (
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Models    ModelsConfig    `koanf:"models"`
	Dataset   DatasetConfig   `koanf:"dataset"`
	Security  SecurityConfig  `koanf:"security"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, testing, production
}

// ModelsConfig locates the model bundles and tunes inference protection.
//
// The gradient boosting directory holds gradient_boosting_model.pkl,
// scaler.json and metadata.json. The tensorflow directory holds
// best_model.json, model.tflite and a metadata.json shared by both networks.
type ModelsConfig struct {
	GradientBoostingDir string `koanf:"gradient_boosting_dir"`
	TensorFlowDir       string `koanf:"tensorflow_dir"`

	// Preload loads every bundle at startup instead of on the first request.
	Preload bool `koanf:"preload"`

	// TFLiteThreads is the interpreter thread count for the quantized model.
	TFLiteThreads int `koanf:"tflite_threads"`

	// Circuit breaker wrapped around each model's inference call.
	BreakerTimeout      time.Duration `koanf:"breaker_timeout"`
	BreakerMinRequests  uint32        `koanf:"breaker_min_requests"`
	BreakerFailureRatio float64       `koanf:"breaker_failure_ratio"`
}

// DatasetConfig locates the crop dataset and the DuckDB engine used to aggregate it.
type DatasetConfig struct {
	Path string `koanf:"path"`

	// DatabasePath is the DuckDB file. Empty means in-memory.
	DatabasePath string `koanf:"database_path"`
	Threads      int    `koanf:"threads"`

	// Preload aggregates the dataset at startup.
	Preload bool `koanf:"preload"`

	// CacheTTL re-aggregates the CSV once the cached means are this old.
	// Zero keeps them for the life of the process.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// SecurityConfig holds API key and CORS settings.
type SecurityConfig struct {
	// APIKey, when set, is required in the X-API-KEY header on prediction
	// and model endpoints.
	APIKey      string   `koanf:"api_key"`
	CORSOrigins []string `koanf:"cors_origins"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	Disabled bool `koanf:"disabled"`

	DefaultPerHour int `koanf:"default_per_hour"`
	DefaultPerDay  int `koanf:"default_per_day"`

	PredictPerMinute   int `koanf:"predict_per_minute"`
	CropsPerMinute     int `koanf:"crops_per_minute"`
	ModelInfoPerMinute int `koanf:"model_info_per_minute"`
	DownloadPerDay     int `koanf:"download_per_day"`

	// BlockDuration is how long an IP stays blocked after exceeding the
	// prediction limit.
	BlockDuration time.Duration `koanf:"block_duration"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	Caller bool `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from defaults, an optional YAML file and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
