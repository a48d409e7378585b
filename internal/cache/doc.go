// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

/*
Package cache provides a thread-safe in-memory key/value cache.

A cache has one TTL for all of its entries. Expiry is checked lazily on Get,
and a cache with a positive TTL also sweeps every five minutes in the
background. A TTL of zero never expires; that is the default for the crop
statistics (DATASET_CACHE_TTL).

Every lookup is counted both in the cache's own Stats, reported by the health
endpoint, and in the cache_hits_total and cache_misses_total Prometheus
counters, labeled with the cache name.

# Usage

	c := cache.New("crop_requirements", 0)
	defer c.Close()

	if v, ok := c.Get("all"); ok {
	    return v.([]models.CropRequirement), nil
	}
	rows, err := load()
	if err != nil {
	    return nil, err // failures are not cached
	}
	c.Set("all", rows)
*/
package cache
