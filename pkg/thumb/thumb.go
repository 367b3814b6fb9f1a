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

// Package thumb abstracts thumbnail conversion for package icons and map
// overview images.
//
// The inspection pipeline never converts images itself; it hands the raw
// bytes to a Converter and stores whatever comes back. Conversion failures
// are not inspection issues, the image is simply omitted.
package thumb

import (
	"context"
	"encoding/base64"
)

// Converter turns raw image bytes into an embeddable string, typically a
// base64 data URI. The second result is false when no thumbnail could be
// produced.
type Converter interface {
	Convert(ctx context.Context, raw []byte) (string, bool)
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(ctx context.Context, raw []byte) (string, bool)

// Convert implements Converter.
func (f ConverterFunc) Convert(ctx context.Context, raw []byte) (string, bool) {
	return f(ctx, raw)
}

// Noop returns a Converter that never produces a thumbnail.
func Noop() Converter {
	return ConverterFunc(func(context.Context, []byte) (string, bool) {
		return "", false
	})
}

// DataURI encodes image bytes as a base64 data URI with the given MIME
// type. Helper for Converter implementations.
func DataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64, " + base64.StdEncoding.EncodeToString(data)
}
