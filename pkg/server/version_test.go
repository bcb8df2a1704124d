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
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNegotiateAPIVersion(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{
			name:   "no accept header",
			accept: "",
			want:   DefaultAPIVersion,
		},
		{
			name:   "generic json accept",
			accept: "application/json",
			want:   DefaultAPIVersion,
		},
		{
			name:   "vendor v1",
			accept: "application/vnd.pyver.v1+json",
			want:   "v1",
		},
		{
			name:   "vendor unsupported version",
			accept: "application/vnd.pyver.v9+json",
			want:   DefaultAPIVersion,
		},
		{
			name:   "malformed vendor type",
			accept: "application/vnd.pyver.",
			want:   DefaultAPIVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			if got := negotiateAPIVersion(req); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSetAPIVersionHeader(t *testing.T) {
	w := httptest.NewRecorder()
	SetAPIVersionHeader(w, "v1")
	if got := w.Header().Get("X-API-Version"); got != "v1" {
		t.Errorf("expected v1, got %s", got)
	}
}
