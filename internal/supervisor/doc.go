// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

/*
Package supervisor runs the server's long-lived work under suture v4.

The tree has two layers:

	RootSupervisor ("agropredict")
	├── ModelsSupervisor ("models-layer")
	│   ├── WarmupService "model-warmup"   (models.preload)
	│   └── WarmupService "dataset-warmup" (dataset.preload)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Warmup services finish with suture.ErrDoNotRestart once their load has run,
so they are removed from the tree instead of being restarted. The dataset
warmup is retryable: a failed aggregation returns an error and suture
restarts it with backoff, except when the dataset file is missing. Model
loading happens once per process, so the model warmup never retries.

Supervisor events are logged through sutureslog, backed by the zerolog slog
adapter in internal/logging.
*/
package supervisor
