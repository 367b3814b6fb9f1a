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

package detail

import (
	"strings"

	"github.com/fsgmodding/modcheck/pkg/xmltree"
)

// imageRef is a normalized icon reference.
type imageRef struct {
	// name is the usable path. Base game references keep their $data
	// form; package local paths are slash fixed with the shop's .png
	// extension swapped for the .dds actually shipped.
	name     string
	baseGame bool
}

// normalizeImage cleans up an icon path as written in mod XML. The game
// store accepts $data references into its own files, Windows style
// backslash paths, and .png names standing in for packaged .dds files.
func normalizeImage(raw string) (imageRef, bool) {
	if raw == "" {
		return imageRef{}, false
	}
	if strings.HasPrefix(raw, "$data") {
		return imageRef{name: raw, baseGame: true}, true
	}

	name := strings.ReplaceAll(raw, "\\", "/")
	if len(name) > 4 && strings.EqualFold(name[len(name)-4:], ".png") {
		name = name[:len(name)-4] + ".dds"
	}
	return imageRef{name: name}, true
}

// firstImage finds the first element with the given tag and normalizes its
// text as an icon path.
func firstImage(root *xmltree.Node, tag string) (string, imageRef, bool) {
	node := root.First(tag)
	if node == nil {
		return "", imageRef{}, false
	}
	raw := node.Text()
	ref, ok := normalizeImage(raw)
	return raw, ref, ok
}
