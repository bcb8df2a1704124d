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

package serializer

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"data.json", FormatJSON},
		{"data.JSON", FormatJSON},
		{"data.yaml", FormatYAML},
		{"data.yml", FormatYAML},
		{"data.table", FormatTable},
		{"data.txt", FormatTable},
		{"data.unknown", FormatJSON},
		{"data", FormatJSON},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatFromPath(tc.path), "path %q", tc.path)
	}
}

func TestReaderJSON(t *testing.T) {
	r, err := NewReader(FormatJSON, strings.NewReader(`{"name":"x","count":2}`))
	require.NoError(t, err)

	var got testPayload
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, testPayload{Name: "x", Count: 2}, got)
}

func TestReaderYAML(t *testing.T) {
	r, err := NewReader(FormatYAML, strings.NewReader("name: x\ncount: 2\n"))
	require.NoError(t, err)

	var got testPayload
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, testPayload{Name: "x", Count: 2}, got)
}

func TestReaderRejectsTable(t *testing.T) {
	_, err := NewReader(FormatTable, strings.NewReader("x"))
	assert.Error(t, err)
}

func TestReaderNil(t *testing.T) {
	var r *Reader
	assert.Error(t, r.Deserialize(&struct{}{}))
	assert.NoError(t, r.Close())
}

func TestNewFileReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"f"}`), 0600))

	r, err := NewFileReader(FormatJSON, path)
	require.NoError(t, err)
	defer r.Close()

	var got testPayload
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, "f", got.Name)
	assert.NoError(t, r.Close())
	assert.NoError(t, r.Close(), "close must be idempotent")
}

func TestNewFileReaderMissing(t *testing.T) {
	_, err := NewFileReader(FormatJSON, filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestNewFileReaderAuto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: auto\n"), 0600))

	r, err := NewFileReaderAuto(path)
	require.NoError(t, err)
	defer r.Close()

	var got testPayload
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, "auto", got.Name)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"g","count":7}`), 0600))

	got, err := FromFile[testPayload](path)
	require.NoError(t, err)
	assert.Equal(t, &testPayload{Name: "g", Count: 7}, got)
}

func TestFromFileHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"remote"}`))
	}))
	defer srv.Close()

	got, err := FromFile[testPayload](srv.URL + "/data.json")
	require.NoError(t, err)
	assert.Equal(t, "remote", got.Name)
}

func TestFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

	_, err := FromFile[testPayload](path)
	assert.Error(t, err)
}
