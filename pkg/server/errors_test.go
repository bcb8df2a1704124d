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
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestWriteError(t *testing.T) {
	t.Run("with request ID in context", func(t *testing.T) {
		requestID := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, requestID))
		w := httptest.NewRecorder()

		WriteError(w, req, http.StatusBadRequest, ErrCodeInvalidRequest,
			"bad input", false, map[string]interface{}{"field": "v"})

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}

		var resp ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if resp.Code != ErrCodeInvalidRequest {
			t.Errorf("expected code %s, got %s", ErrCodeInvalidRequest, resp.Code)
		}
		if resp.Message != "bad input" {
			t.Errorf("expected message 'bad input', got %s", resp.Message)
		}
		if resp.RequestID != requestID {
			t.Errorf("expected request ID %s, got %s", requestID, resp.RequestID)
		}
		if resp.Retryable {
			t.Error("expected retryable false")
		}
		if resp.Details["field"] != "v" {
			t.Errorf("expected detail field=v, got %v", resp.Details)
		}
		if resp.Timestamp.IsZero() {
			t.Error("expected timestamp to be set")
		}
	})

	t.Run("generates request ID when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		WriteError(w, req, http.StatusInternalServerError, ErrCodeInternalError,
			"oops", true, nil)

		var resp ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if _, err := uuid.Parse(resp.RequestID); err != nil {
			t.Errorf("expected generated UUID request ID, got %s", resp.RequestID)
		}
		if !resp.Retryable {
			t.Error("expected retryable true")
		}
	})
}
