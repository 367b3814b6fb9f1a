// Copyright (c) 2025, FSG Modding.  All rights reserved.
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

import "context"

// Format selects the wire representation for serialized output.
type Format string

const (
	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"
	// FormatYAML renders block style YAML.
	FormatYAML Format = "yaml"
	// FormatTable renders a two column FIELD/VALUE listing. Table
	// output is write only.
	FormatTable Format = "table"
)

// IsUnknown reports whether f names a format this package does not
// support.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	}
	return true
}

// SupportedFormats lists the accepted format names for usage strings
// and validation errors, in declaration order.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatTable)}
}

// Serializer writes a value in one of the supported formats.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer releases resources held by a Serializer, typically the
// output file handle.
type Closer interface {
	Close() error
}
