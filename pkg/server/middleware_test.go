// Copyright (c) 2025, the pyver authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestIDMiddleware(t *testing.T) {
	s := New()

	t.Run("generates request ID when missing", func(t *testing.T) {
		var gotID string
		handler := s.requestIDMiddleware(func(_ http.ResponseWriter, r *http.Request) {
			gotID, _ = r.Context().Value(contextKeyRequestID).(string)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		if gotID == "" {
			t.Fatal("expected request ID in context")
		}
		if _, err := uuid.Parse(gotID); err != nil {
			t.Errorf("expected valid UUID, got %s", gotID)
		}
		if w.Header().Get("X-Request-Id") != gotID {
			t.Errorf("expected response header to carry request ID %s, got %s",
				gotID, w.Header().Get("X-Request-Id"))
		}
	})

	t.Run("preserves valid request ID", func(t *testing.T) {
		provided := uuid.New().String()
		var gotID string
		handler := s.requestIDMiddleware(func(_ http.ResponseWriter, r *http.Request) {
			gotID, _ = r.Context().Value(contextKeyRequestID).(string)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-Id", provided)
		handler(httptest.NewRecorder(), req)

		if gotID != provided {
			t.Errorf("expected request ID %s, got %s", provided, gotID)
		}
	})

	t.Run("replaces invalid request ID", func(t *testing.T) {
		var gotID string
		handler := s.requestIDMiddleware(func(_ http.ResponseWriter, r *http.Request) {
			gotID, _ = r.Context().Value(contextKeyRequestID).(string)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-Id", "not-a-uuid")
		handler(httptest.NewRecorder(), req)

		if gotID == "not-a-uuid" {
			t.Error("expected invalid request ID to be replaced")
		}
		if _, err := uuid.Parse(gotID); err != nil {
			t.Errorf("expected valid UUID, got %s", gotID)
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	s := New(WithRateLimit(1, 1))

	handler := s.rateLimitMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// First request consumes the burst.
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", w.Code)
	}
	if w.Header().Get("X-RateLimit-Limit") == "" {
		t.Error("expected X-RateLimit-Limit header")
	}

	// Second request should be rejected.
	w = httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status %d, got %d", http.StatusTooManyRequests, w.Code)
	}
	if w.Header().Get("Retry-After") != "1" {
		t.Errorf("expected Retry-After 1, got %s", w.Header().Get("Retry-After"))
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errResp.Code != ErrCodeRateLimitExceeded {
		t.Errorf("expected code %s, got %s", ErrCodeRateLimitExceeded, errResp.Code)
	}
	if !errResp.Retryable {
		t.Error("expected rate limit error to be retryable")
	}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := New()

	tests := []struct {
		name  string
		panic any
	}{
		{name: "panic with error", panic: http.ErrAbortHandler},
		{name: "panic with string", panic: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := s.panicRecoveryMiddleware(func(_ http.ResponseWriter, _ *http.Request) {
				panic(tt.panic)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()
			handler(w, req)

			if w.Code != http.StatusInternalServerError {
				t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
			}

			var errResp ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&errResp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if errResp.Code != ErrCodeInternalError {
				t.Errorf("expected code %s, got %s", ErrCodeInternalError, errResp.Code)
			}
		})
	}
}

func TestVersionMiddleware(t *testing.T) {
	s := New()

	var gotVersion string
	handler := s.versionMiddleware(func(_ http.ResponseWriter, r *http.Request) {
		gotVersion, _ = r.Context().Value(contextKeyAPIVersion).(string)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if gotVersion != DefaultAPIVersion {
		t.Errorf("expected version %s, got %s", DefaultAPIVersion, gotVersion)
	}
	if w.Header().Get("X-API-Version") != DefaultAPIVersion {
		t.Errorf("expected X-API-Version %s, got %s",
			DefaultAPIVersion, w.Header().Get("X-API-Version"))
	}
}

func TestWithMiddlewareChain(t *testing.T) {
	s := New()

	handler := s.withMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("expected status %d, got %d", http.StatusTeapot, w.Code)
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id header from middleware chain")
	}
	if w.Header().Get("X-API-Version") == "" {
		t.Error("expected X-API-Version header from middleware chain")
	}
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	if rw.Status() != http.StatusOK {
		t.Errorf("expected default status %d, got %d", http.StatusOK, rw.Status())
	}

	rw.WriteHeader(http.StatusNotFound)
	if rw.Status() != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rw.Status())
	}

	// Second WriteHeader is ignored.
	rw.WriteHeader(http.StatusOK)
	if rw.Status() != http.StatusNotFound {
		t.Errorf("expected status to remain %d, got %d", http.StatusNotFound, rw.Status())
	}

	if _, err := rw.Write([]byte("body")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if rec.Body.String() != "body" {
		t.Errorf("expected body to be written, got %q", rec.Body.String())
	}
}
