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

// Package moddesc loads a package's modDesc.xml and extracts its contents
// into the inspection record.
//
// Every extraction degrades independently: a missing or unparsable piece
// either records an issue or falls back to a documented default, so a
// sparse or sloppy descriptor still yields a complete record. Only a
// descriptor that is absent or unparsable even after recovery stops the
// pipeline.
package moddesc

import (
	"slices"
	"strings"

	"github.com/fsgmodding/modcheck/pkg/archive"
	"github.com/fsgmodding/modcheck/pkg/issue"
	"github.com/fsgmodding/modcheck/pkg/record"
	"github.com/fsgmodding/modcheck/pkg/xmltree"
)

// Name is the descriptor document every mod carries at its package root.
const Name = "modDesc.xml"

// defaultVersion stands in for a version element that is present but
// empty, which the game treats as 1.0.0.0.
const defaultVersion = "1.0.0.0"

// defaultDevice is the input device whose bindings ship with the mod.
const defaultDevice = "KB_MOUSE_DEFAULT"

// Load reads and parses the descriptor document from an open package.
//
// A package without the document is fatally marked DescMissing. Malformed
// XML gets one recovery attempt that drops every byte before the first
// '<', which repairs descriptors corrupted by download tools prepending
// junk; a successful retry records a DescDamaged advisory, a failed one
// fatally marks DescParseError. The boolean reports whether a usable
// document came back.
func Load(rec *record.Record, src archive.Handle) (*xmltree.Node, bool) {
	text, err := src.ReadText(Name)
	if err != nil {
		rec.AddFatal(issue.DescMissing)
		return nil, false
	}

	root, err := xmltree.Parse(strings.NewReader(text))
	if err == nil {
		return root, true
	}

	if idx := strings.IndexByte(text, '<'); idx > 0 {
		if root, err = xmltree.Parse(strings.NewReader(text[idx:])); err == nil {
			rec.AddIssue(issue.DescDamaged)
			return root, true
		}
	}

	rec.AddFatal(issue.DescParseError)
	return nil, false
}

// Extract fills the record's descriptor block and locale maps from a
// parsed descriptor document. File counting must have run first so the
// icon reference can be checked against the DDS files actually present.
func Extract(rec *record.Record, root *xmltree.Node) {
	desc := &rec.ModDesc

	if v, ok := root.AttrUint("descVersion"); ok {
		desc.DescVersion = int(v)
	} else {
		rec.AddIssue(issue.DescVersionOldOrMissing)
	}

	if text, ok := root.FirstText("version"); ok {
		desc.Version = text
		if text == "" {
			desc.Version = defaultVersion
		}
	} else {
		rec.AddIssue(issue.NoModVersion)
	}

	if text, ok := root.FirstText("author"); ok && text != "" {
		desc.Author = text
	}

	if mp := root.First("multiplayer"); mp != nil {
		if v, ok := mp.AttrBool("supported"); ok {
			desc.MultiPlayer = v
		}
	}

	desc.StoreItems = len(root.All("storeItem"))

	if m := root.First("map"); m != nil {
		if v, ok := m.Attr("configFilename"); ok {
			desc.MapConfigFile = &v
		}
	}

	for _, dep := range root.All("dependency") {
		if text := dep.Text(); text != "" {
			desc.Depend = append(desc.Depend, text)
		}
	}

	// Store metadata in a free mod usually means a ripped paid DLC.
	if root.First("productId") != nil {
		rec.AddIssue(issue.LikelyPiracy)
	}

	desc.IconFileName = iconName(root, rec.FileDetail.ImageDDS)
	if desc.IconFileName == nil {
		rec.AddIssue(issue.NoModIcon)
	}

	for _, action := range root.All("action") {
		name, ok := action.Attr("name")
		if !ok {
			continue
		}
		category, ok := action.Attr("category")
		if !ok {
			category = "ALL"
		}
		desc.Actions[name] = category
	}

	for _, bind := range root.All("actionBinding") {
		name, ok := bind.Attr("action")
		if !ok {
			continue
		}
		inputs := []string{}
		for _, b := range bind.ChildrenNamed("binding") {
			if device, _ := b.Attr("device"); device != defaultDevice {
				continue
			}
			if input, ok := b.Attr("input"); ok {
				inputs = append(inputs, input)
			}
		}
		desc.Binds[name] = inputs
	}

	localize(rec, root, "title", rec.L10N.Title, "--")
	localize(rec, root, "description", rec.L10N.Description, "")
}

// iconName resolves the descriptor's icon reference against the DDS files
// the package ships. The game swaps a .png suffix for .dds at load time,
// so everything from the first ".png" onward is replaced before the
// lookup. An unresolvable reference yields nil.
func iconName(root *xmltree.Node, dds []string) *string {
	text, ok := root.FirstText("iconFilename")
	if !ok || text == "" {
		return nil
	}
	if idx := strings.Index(text, ".png"); idx >= 0 {
		text = text[:idx] + ".dds"
	}
	if slices.Contains(dds, text) {
		return &text
	}
	return nil
}

// localize collects one translated string per child element of the first
// tag element, keyed by the child's tag name as the locale code. A bare
// text body counts as an implicit English entry but flags the missing
// translations, as does the element being absent altogether.
func localize(rec *record.Record, root *xmltree.Node, tag string, dst map[string]string, fallback string) {
	node := root.First(tag)
	if node == nil {
		rec.AddIssue(issue.MissingL10N)
		return
	}

	if !node.HasChildElements() {
		if text := node.Text(); text != "" {
			dst["en"] = text
		}
		rec.AddIssue(issue.MissingL10N)
		return
	}

	for _, lang := range node.Children {
		text := lang.Text()
		if text == "" {
			text = fallback
		}
		dst[lang.Name] = text
	}
}
