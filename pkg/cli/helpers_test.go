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

package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pyver/pyver/pkg/serializer"
)

// runCommand executes the root command with the given arguments and an
// output file, returning the output path for decoding.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	if len(args) == 0 {
		t.Fatal("runCommand requires a subcommand")
	}

	// The output flag goes right after the subcommand name, ahead of any
	// positional arguments.
	outPath := filepath.Join(t.TempDir(), "out.json")
	full := []string{"pyver", args[0], "--output", outPath}
	full = append(full, args[1:]...)

	err := New().Run(context.Background(), full)
	return outPath, err
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
			wantErr:    false,
		},
		{
			name:       "valid json format",
			format:     "json",
			wantFormat: serializer.FormatJSON,
			wantErr:    false,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
			wantErr:    false,
		},
		{
			name:       "empty format defaults to json",
			format:     "",
			wantFormat: serializer.FormatJSON,
			wantErr:    false,
		},
		{
			name:    "invalid format xml",
			format:  "xml",
			wantErr: true,
		},
		{
			name:    "invalid format csv",
			format:  "csv",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := serializer.ParseFormat(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for format %q", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.wantFormat {
				t.Errorf("expected format %s, got %s", tt.wantFormat, got)
			}
		})
	}
}
