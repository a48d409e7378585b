// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

var validEnvironments = map[string]bool{
	"development": true,
	"testing":     true,
	"production":  true,
}

// Validate checks that configuration values are present and within bounds.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateModels(); err != nil {
		return err
	}
	if err := c.validateDataset(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, testing, production")
	}
	return nil
}

func (c *Config) validateModels() error {
	if strings.TrimSpace(c.Models.GradientBoostingDir) == "" {
		return fmt.Errorf("GB_MODEL_DIR is required")
	}
	if strings.TrimSpace(c.Models.TensorFlowDir) == "" {
		return fmt.Errorf("TF_MODEL_DIR is required")
	}
	if c.Models.TFLiteThreads < 1 {
		return fmt.Errorf("TFLITE_THREADS must be at least 1")
	}
	if c.Models.BreakerFailureRatio <= 0 || c.Models.BreakerFailureRatio > 1 {
		return fmt.Errorf("BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	if c.Models.BreakerTimeout <= 0 {
		return fmt.Errorf("BREAKER_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateDataset() error {
	if strings.TrimSpace(c.Dataset.Path) == "" {
		return fmt.Errorf("DATASET_PATH is required")
	}
	if c.Dataset.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be 0 (auto) or positive")
	}
	if c.Dataset.CacheTTL < 0 {
		return fmt.Errorf("DATASET_CACHE_TTL must be 0 (never expire) or positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.IsProduction() {
		for _, origin := range c.Security.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain '*' in production")
			}
		}
	}
	if c.Security.APIKey != "" && len(c.Security.APIKey) < 16 {
		return fmt.Errorf("API_KEY must be at least 16 characters")
	}
	return nil
}

func (c *Config) validateRateLimits() error {
	if c.RateLimit.Disabled {
		return nil
	}
	limits := map[string]int{
		"RATE_LIMIT_DEFAULT_PER_HOUR":      c.RateLimit.DefaultPerHour,
		"RATE_LIMIT_DEFAULT_PER_DAY":       c.RateLimit.DefaultPerDay,
		"RATE_LIMIT_PREDICT_PER_MINUTE":    c.RateLimit.PredictPerMinute,
		"RATE_LIMIT_CROPS_PER_MINUTE":      c.RateLimit.CropsPerMinute,
		"RATE_LIMIT_MODEL_INFO_PER_MINUTE": c.RateLimit.ModelInfoPerMinute,
		"RATE_LIMIT_DOWNLOAD_PER_DAY":      c.RateLimit.DownloadPerDay,
	}
	for name, v := range limits {
		if v < 1 {
			return fmt.Errorf("%s must be at least 1", name)
		}
	}
	if c.RateLimit.BlockDuration < 0 {
		return fmt.Errorf("RATE_LIMIT_BLOCK_DURATION must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
