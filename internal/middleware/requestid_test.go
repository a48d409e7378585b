// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/tomtom215/agropredict/internal/logging"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"generated when absent", "", false},
		{"upstream id kept", "edge-7f3a.42_b", true},
		{"too long replaced", strings.Repeat("a", 65), false},
		{"unsafe characters replaced", "abc\ndef", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromChi, fromLogging, correlation string
			handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fromChi = chimiddleware.GetReqID(r.Context())
				fromLogging = logging.RequestIDFromContext(r.Context())
				correlation = logging.CorrelationIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if tt.keep {
				if got != tt.incoming {
					t.Errorf("response id = %q, want %q", got, tt.incoming)
				}
			} else if _, err := uuid.Parse(got); err != nil {
				t.Errorf("response id %q is not a UUID", got)
			}

			if fromChi != got || fromLogging != got {
				t.Errorf("context ids chi=%q logging=%q, want %q", fromChi, fromLogging, got)
			}
			if correlation == "" {
				t.Error("correlation id not set")
			}
		})
	}
}
