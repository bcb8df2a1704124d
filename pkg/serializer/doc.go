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

// Package serializer provides reading and writing of structured data
// in JSON, YAML, and table formats.
//
// # Writing
//
// Writer serializes any Go value to a file or stdout:
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatJSON, "out.json")
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//		return err
//	}
//
// An empty path or "-" writes to stdout. The table format renders a
// flattened field/value view using text/tabwriter and is intended for
// terminals; it cannot be read back.
//
// # Reading
//
// Reader deserializes from local files, arbitrary io.Readers, or
// HTTP/HTTPS URLs, with the format detected from the path extension:
//
//	versions, err := serializer.FromFile[[]string]("versions.yaml")
//
// Remote URLs are fetched through HTTPReader, which applies the shared
// client timeouts from the defaults package.
//
// # Formats
//
// Supported formats are "json", "yaml", and "table". ParseFormat maps
// user input (e.g. a --format flag) to a Format, defaulting to JSON for
// the empty string.
package serializer
