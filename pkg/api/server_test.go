package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pyver/pyver/pkg/versions"
)

func TestRoutes(t *testing.T) {
	r := routes(versions.NewService())

	for _, path := range []string{
		"/v1/version/parse",
		"/v1/version/check",
		"/v1/version/sort",
	} {
		if r[path] == nil {
			t.Errorf("expected handler registered for %s", path)
		}
	}
}

func TestRoutesEndToEnd(t *testing.T) {
	mux := http.NewServeMux()
	for path, handler := range routes(versions.NewService()) {
		mux.HandleFunc(path, handler)
	}
	srv := httptest.NewServer(mux)
	defer srv.Close()

	t.Run("parse", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/v1/version/parse?v=" + url.QueryEscape("V1.0.0-RC.2"))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}

		var body versions.ParseResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body.Version.Canonical != "1.0.0rc2" {
			t.Errorf("expected canonical 1.0.0rc2, got %s", body.Version.Canonical)
		}
	})

	t.Run("check", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/v1/version/check?v=1.5&require=" + url.QueryEscape("~=1.4"))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		var body versions.CheckResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !body.Compatible {
			t.Error("expected 1.5 to satisfy ~=1.4")
		}
	})

	t.Run("sort", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/v1/version/sort", "application/json",
			strings.NewReader(`{"versions":["2!1.0","1.0","1.0a1"]}`))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		var body versions.SortResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		want := []string{"1.0a1", "1.0", "2!1.0"}
		for i, v := range want {
			if body.Versions[i] != v {
				t.Errorf("position %d: expected %s, got %s", i, v, body.Versions[i])
			}
		}
	})
}
