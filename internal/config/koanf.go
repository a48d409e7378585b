// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config file locations searched in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/agropredict/config.yaml",
	"/etc/agropredict/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            5000,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Models: ModelsConfig{
			GradientBoostingDir: "models/gradient_boosting",
			TensorFlowDir:       "models/tensorflow",
			Preload:             true,
			TFLiteThreads:       1,
			BreakerTimeout:      30 * time.Second,
			BreakerMinRequests:  10,
			BreakerFailureRatio: 0.6,
		},
		Dataset: DatasetConfig{
			Path:         "data/Crop_recommendation.csv",
			DatabasePath: "",
			Threads:      0,
			Preload:      true,
		},
		Security: SecurityConfig{
			APIKey:      "",
			CORSOrigins: []string{"*"},
		},
		RateLimit: RateLimitConfig{
			Disabled:           false,
			DefaultPerHour:     50,
			DefaultPerDay:      200,
			PredictPerMinute:   10,
			CropsPerMinute:     20,
			ModelInfoPerMinute: 10,
			DownloadPerDay:     5,
			BlockDuration:      10 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration in three layers, each overriding the last:
//
//  1. Built-in defaults
//  2. Optional YAML config file
//  3. Environment variables
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed as comma-separated lists when set from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Unlisted variables are ignored.
var envMappings = map[string]string{
	// Server
	"http_host":        "server.host",
	"http_port":        "server.port",
	"server_timeout":   "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Model bundles
	"gb_model_dir":          "models.gradient_boosting_dir",
	"tf_model_dir":          "models.tensorflow_dir",
	"models_preload":        "models.preload",
	"tflite_threads":        "models.tflite_threads",
	"breaker_timeout":       "models.breaker_timeout",
	"breaker_min_requests":  "models.breaker_min_requests",
	"breaker_failure_ratio": "models.breaker_failure_ratio",

	// Dataset
	"dataset_path":      "dataset.path",
	"duckdb_path":       "dataset.database_path",
	"duckdb_threads":    "dataset.threads",
	"dataset_preload":   "dataset.preload",
	"dataset_cache_ttl": "dataset.cache_ttl",

	// Security
	"api_key":      "security.api_key",
	"cors_origins": "security.cors_origins",

	// Rate limiting
	"disable_rate_limit":               "rate_limit.disabled",
	"rate_limit_default_per_hour":      "rate_limit.default_per_hour",
	"rate_limit_default_per_day":       "rate_limit.default_per_day",
	"rate_limit_predict_per_minute":    "rate_limit.predict_per_minute",
	"rate_limit_crops_per_minute":      "rate_limit.crops_per_minute",
	"rate_limit_model_info_per_minute": "rate_limit.model_info_per_minute",
	"rate_limit_download_per_day":      "rate_limit.download_per_day",
	"rate_limit_block_duration":        "rate_limit.block_duration",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps environment variable names to koanf config paths.
//
// Examples:
//   - GB_MODEL_DIR -> models.gradient_boosting_dir
//   - DATASET_PATH -> dataset.path
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}

// WatchConfigFile calls callback whenever the config file at path changes.
func WatchConfigFile(path string, callback func()) error {
	provider := file.Provider(path)
	return provider.Watch(func(_ interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}

// ConfigFilePath returns the config file LoadWithKoanf would read, or "".
func ConfigFilePath() string {
	return findConfigFile()
}
