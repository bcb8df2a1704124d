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
	"context"
	"fmt"
)

// Format identifies a serialization format.
type Format string

const (
	// FormatUnknown is the zero value for Format.
	FormatUnknown Format = ""

	// FormatJSON serializes to indented JSON.
	FormatJSON Format = "json"

	// FormatYAML serializes to YAML.
	FormatYAML Format = "yaml"

	// FormatTable serializes to a human-readable aligned table.
	// Table output is write-only and cannot be deserialized.
	FormatTable Format = "table"
)

// defaultValueKey is the table key used for scalar values with no field path.
const defaultValueKey = "value"

// IsUnknown reports whether the format is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// SupportedFormats returns the list of formats accepted by ParseFormat
// and the Writer constructors.
func SupportedFormats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTable}
}

// ParseFormat converts a user-supplied string into a Format.
// An empty string defaults to FormatJSON.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatUnknown:
		return FormatJSON, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatTable:
		return FormatTable, nil
	default:
		return FormatUnknown, fmt.Errorf("unknown format: %q (supported: %v)", s, SupportedFormats())
	}
}

// Serializer is the common interface implemented by Writer.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
	Close() error
}
