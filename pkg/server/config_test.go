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
	"testing"
	"time"
)

func TestParseConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		cfg := parseConfig()

		if cfg.Address != "" {
			t.Errorf("expected empty address, got %s", cfg.Address)
		}
		if cfg.Port != 8080 {
			t.Errorf("expected port 8080, got %d", cfg.Port)
		}
		if cfg.RateLimit != 100 {
			t.Errorf("expected rate limit 100, got %v", cfg.RateLimit)
		}
		if cfg.RateLimitBurst != 200 {
			t.Errorf("expected rate limit burst 200, got %d", cfg.RateLimitBurst)
		}
		if cfg.MaxBulkVersions != 1000 {
			t.Errorf("expected max bulk versions 1000, got %d", cfg.MaxBulkVersions)
		}
	})

	t.Run("port from env", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		cfg := parseConfig()
		if cfg.Port != 9090 {
			t.Errorf("expected port 9090, got %d", cfg.Port)
		}
	})

	t.Run("invalid port from env", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")
		cfg := parseConfig()
		if cfg.Port != 8080 {
			t.Errorf("expected default port 8080, got %d", cfg.Port)
		}
	})

	t.Run("shutdown timeout from env", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "45")
		cfg := parseConfig()
		if cfg.ShutdownTimeout != 45*time.Second {
			t.Errorf("expected shutdown timeout 45s, got %v", cfg.ShutdownTimeout)
		}
	})

	t.Run("negative shutdown timeout ignored", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "-5")
		cfg := parseConfig()
		if cfg.ShutdownTimeout <= 0 {
			t.Errorf("expected positive shutdown timeout, got %v", cfg.ShutdownTimeout)
		}
	})
}

func TestOptions(t *testing.T) {
	cfg := parseConfig()
	for _, opt := range []Option{
		WithName("test-server"),
		WithVersion("1.2.3"),
		WithAddress("127.0.0.1"),
		WithPort(8181),
		WithRateLimit(10, 20),
	} {
		opt(cfg)
	}

	if cfg.Name != "test-server" {
		t.Errorf("expected name test-server, got %s", cfg.Name)
	}
	if cfg.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", cfg.Version)
	}
	if cfg.Address != "127.0.0.1" {
		t.Errorf("expected address 127.0.0.1, got %s", cfg.Address)
	}
	if cfg.Port != 8181 {
		t.Errorf("expected port 8181, got %d", cfg.Port)
	}
	if cfg.RateLimit != 10 || cfg.RateLimitBurst != 20 {
		t.Errorf("expected rate limit 10/20, got %v/%d", cfg.RateLimit, cfg.RateLimitBurst)
	}
}
