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

package header

import (
	"time"
)

// APIVersion is the schema version stamped on every report this tool
// emits.
const APIVersion = "modcheck.fsgmodding.io/v1"

// Kind represents the type of report document.
type Kind string

// Valid Kind constants for all report types.
const (
	KindModRecord        Kind = "ModRecord"
	KindCollectionReport Kind = "CollectionReport"
	KindCollectionDiff   Kind = "CollectionDiff"
	KindSaveGame         Kind = "SaveGame"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k *Kind) IsValid() bool {
	switch *k {
	case KindModRecord, KindCollectionReport, KindCollectionDiff, KindSaveGame:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair
// to the Header. If the Metadata map is nil, it will be initialized.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// New creates a new Header instance with the provided functional
// options. The APIVersion is always stamped and the Metadata map is
// initialized automatically.
func New(opts ...Option) *Header {
	h := &Header{
		APIVersion: APIVersion,
		Metadata:   make(map[string]string),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Header carries kind and versioning information for report documents.
// It follows Kubernetes-style resource conventions with Kind,
// APIVersion, and Metadata fields.
type Header struct {
	// Kind is the type of the report document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the report document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs with metadata about the report.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init initializes the Header in place with the specified kind and
// tool version. It populates Metadata with the current UTC timestamp
// and, when non-empty, the tool version.
func (h *Header) Init(kind Kind, version string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = make(map[string]string)

	h.Metadata["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	if version != "" {
		h.Metadata["version"] = version
	}
}
