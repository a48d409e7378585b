// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

// Package config loads AgroPredict configuration with koanf.
//
// Values are layered, later layers winning:
//
//  1. Defaults from defaultConfig()
//  2. A YAML file: CONFIG_PATH, else config.yaml / config.yml, else /etc/agropredict/
//  3. Environment variables listed in envMappings (GB_MODEL_DIR, TF_MODEL_DIR,
//     DATASET_PATH, HTTP_PORT, API_KEY, LOG_LEVEL, ...)
//
// Example config.yaml:
//
//	server:
//	  port: 5000
//	models:
//	  gradient_boosting_dir: /srv/agropredict/models/gradient_boosting
//	  tensorflow_dir: /srv/agropredict/models/tensorflow
//	dataset:
//	  path: /srv/agropredict/data/Crop_recommendation.csv
//	rate_limit:
//	  predict_per_minute: 10
//
// Load validates the merged result and returns an error naming the offending
// environment variable.
package config
