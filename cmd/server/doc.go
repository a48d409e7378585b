// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

/*
Package main is the entry point for the AgroPredict server.

AgroPredict recommends a crop from seven soil and climate measurements
(N, P, K, temperature, humidity, ph, rainfall) using one of three trained
models, and serves the mean growing conditions of every crop in the
training dataset.

# Application Architecture

	RootSupervisor ("agropredict")
	├── ModelsSupervisor ("models-layer")
	│   ├── model-warmup     loads the model bundles (MODELS_PRELOAD)
	│   └── dataset-warmup   aggregates the crop CSV in DuckDB (DATASET_PRELOAD)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

With preloading disabled, bundles and the dataset load on first request.

# Configuration

Koanf v2 layers, highest priority last:
  - Built-in defaults
  - Config file (CONFIG_PATH, ./config.yaml or /etc/agropredict/config.yaml)
  - Environment variables

Common variables:
  - HTTP_HOST, HTTP_PORT: listen address (default 0.0.0.0:5000)
  - GB_MODEL_DIR: gradient boosting bundle (default models/gradient_boosting)
  - TF_MODEL_DIR: tensorflow and tflite bundle (default models/tensorflow)
  - DATASET_PATH: crop CSV (default data/Crop_recommendation.csv)
  - API_KEY: require X-API-KEY on prediction and model endpoints
  - LOG_LEVEL, LOG_FORMAT: zerolog level and json/console output

Editing the config file while the server runs updates the log level.

# Build Tags

	go build ./cmd/server                 # TensorFlow Lite reported unavailable
	go build -tags tflite ./cmd/server    # links the TensorFlow Lite C runtime

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests for server.shutdown_timeout before exiting.
*/
package main
