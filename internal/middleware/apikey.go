// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/tomtom215/agropredict/internal/logging"
)

// APIKeyHeader is the header clients send their key in.
const APIKeyHeader = "X-API-KEY"

// APIKey requires the X-API-KEY header to equal key. An empty key disables the check.
func APIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}
		want := []byte(key)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(APIKeyHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
				logging.Ctx(r.Context()).Warn().
					Str("path", r.URL.Path).
					Str("ip", logging.SanitizeValue(clientIP(r))).
					Bool("key_present", got != "").
					Msg("Rejected request with invalid API key")
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or missing API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
