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

// Package detail extracts the store catalog of a mod package: brand
// registrations, translation tables, and the full vehicle and placeable
// records the game would offer in the shop.
//
// Extraction is deliberately forgiving. A store item that cannot be read
// or parsed is recorded as an issue and skipped, never aborting the rest
// of the catalog.
package detail

import (
	"context"
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"github.com/fsgmodding/modcheck/pkg/archive"
	"github.com/fsgmodding/modcheck/pkg/thumb"
	"github.com/fsgmodding/modcheck/pkg/xmltree"
)

// Issue is a stable token describing why part of the catalog could not be
// extracted. Issue values are part of the output contract and never change
// between releases.
type Issue string

const (
	// IssueUnreadable marks a package that could not be opened at all.
	IssueUnreadable Issue = "DETAIL_ERROR_UNREADABLE"
	// IssueMissingDesc marks a package without a usable modDesc.xml.
	IssueMissingDesc Issue = "DETAIL_ERROR_MISSING_MODDESC"
	// IssueMissingIcon marks a brand whose icon file is absent.
	IssueMissingIcon Issue = "DETAIL_ERROR_MISSING_ICON"
	// IssueItemMissing marks a store item whose XML file is absent.
	IssueItemMissing Issue = "DETAIL_ERROR_MISSING_ITEM"
	// IssueItemBroken marks a store item whose XML file does not parse.
	IssueItemBroken Issue = "DETAIL_ERROR_PARSE_ITEM"
)

// Brand is one brand registration from a modDesc. Icons referencing game
// data stay as paths in IconBase; icons shipped inside the package are
// converted and stored inline in IconFile.
type Brand struct {
	Title    string  `json:"title"`
	IconFile *string `json:"iconFile"`
	IconBase *string `json:"iconBase"`
	IconOrig *string `json:"iconOrig"`
}

// ModDetail is the extracted store catalog of one mod package. Vehicles
// and Placeables are keyed by the storeItem xmlFilename exactly as written
// in the modDesc, backslashes included.
type ModDetail struct {
	Brands         map[string]*Brand            `json:"brands"`
	Issues         []Issue                      `json:"issues"`
	ItemBrands     []string                     `json:"itemBrands"`
	ItemCategories []string                     `json:"itemCategories"`
	L10N           map[string]map[string]string `json:"l10n"`
	Placeables     map[string]*Place            `json:"placeables"`
	Vehicles       map[string]*Vehicle          `json:"vehicles"`
}

func newModDetail() *ModDetail {
	return &ModDetail{
		Brands:         map[string]*Brand{},
		Issues:         []Issue{},
		ItemBrands:     []string{},
		ItemCategories: []string{},
		L10N:           map[string]map[string]string{},
		Placeables:     map[string]*Place{},
		Vehicles:       map[string]*Vehicle{},
	}
}

func failure(code Issue) *ModDetail {
	d := newModDetail()
	d.AddIssue(code)
	return d
}

// AddIssue records an extraction issue, keeping the list deduplicated and
// sorted.
func (d *ModDetail) AddIssue(code Issue) {
	if slices.Contains(d.Issues, code) {
		return
	}
	d.Issues = append(d.Issues, code)
	slices.Sort(d.Issues)
}

// addLang stores one translation. Keys are case folded so lookups do not
// depend on the mod author's capitalization; language codes are kept as
// written.
func (d *ModDetail) addLang(lang, key, value string) {
	entries, ok := d.L10N[lang]
	if !ok {
		entries = map[string]string{}
		d.L10N[lang] = entries
	}
	entries[strings.ToLower(key)] = value
}

// addBrand registers a brand under its upper cased key, overwriting the
// title when the brand appears twice.
func (d *ModDetail) addBrand(key string, title *string) *Brand {
	b, ok := d.Brands[key]
	if !ok {
		b = &Brand{}
		d.Brands[key] = b
	}
	if title != nil {
		b.Title = *title
	} else {
		b.Title = key
	}
	return b
}

// String renders the catalog as compact JSON.
func (d *ModDetail) String() string {
	out, err := json.Marshal(d)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// Options adjusts how much work extraction performs.
type Options struct {
	// SkipIcons leaves brand and store item icons unconverted. Icon
	// source paths are still recorded.
	SkipIcons bool
	// Converter turns raw icon bytes into an embeddable string. Nil
	// disables icon conversion.
	Converter thumb.Converter
}

func (o Options) converter() thumb.Converter {
	if o.Converter == nil {
		return thumb.Noop()
	}
	return o.Converter
}

// Parse opens the package at path and extracts its store catalog.
func Parse(ctx context.Context, path string, opts Options) *ModDetail {
	src, err := archive.Open(path)
	if err != nil {
		return failure(IssueUnreadable)
	}
	defer src.Close()

	raw, err := src.ReadText("modDesc.xml")
	if err != nil {
		return failure(IssueMissingDesc)
	}
	root, err := xmltree.Parse(strings.NewReader(raw))
	if err != nil {
		return failure(IssueMissingDesc)
	}

	return Read(ctx, src, root, src.List(), opts)
}

// Read extracts the store catalog from an already opened package. descRoot
// is the parsed modDesc.xml root and entries the package file list.
func Read(ctx context.Context, src archive.Handle, descRoot *xmltree.Node, entries []archive.Entry, opts Options) *ModDetail {
	d := newModDetail()

	d.readLanguages(src, descRoot, entries)
	d.readBrands(ctx, src, descRoot, opts)

	for _, item := range descRoot.All("storeItem") {
		name, ok := item.Attr("xmlFilename")
		if !ok {
			continue
		}

		raw, err := src.ReadText(strings.ReplaceAll(name, "\\", "/"))
		if err != nil {
			d.AddIssue(IssueItemMissing)
			continue
		}
		root, err := xmltree.Parse(strings.NewReader(raw))
		if err != nil {
			d.AddIssue(IssueItemBroken)
			continue
		}

		switch root.Name {
		case "vehicle":
			d.Vehicles[name] = parseVehicle(ctx, src, root, opts)
		case "placeable":
			d.Placeables[name] = parsePlace(ctx, src, root, opts)
		}
	}

	for _, v := range d.Vehicles {
		if v.Sorting.Brand != nil {
			d.addItemBrand(*v.Sorting.Brand)
		}
		if v.Sorting.Category != nil {
			d.addItemCategory(*v.Sorting.Category)
		}
	}
	for _, p := range d.Placeables {
		if p.Sorting.Category != nil {
			d.addItemCategory(*p.Sorting.Category)
		}
	}

	return d
}

func (d *ModDetail) addItemBrand(name string) {
	if slices.Contains(d.ItemBrands, name) {
		return
	}
	d.ItemBrands = append(d.ItemBrands, name)
	slices.Sort(d.ItemBrands)
}

func (d *ModDetail) addItemCategory(name string) {
	if slices.Contains(d.ItemCategories, name) {
		return
	}
	d.ItemCategories = append(d.ItemCategories, name)
	slices.Sort(d.ItemCategories)
}

// readLanguages collects translations from both places a modDesc can
// define them: text entries embedded under the l10n element, and external
// files named by the l10n filenamePrefix attribute. External files may use
// either the <text name k/v in attributes> or the short <e k v> layout.
func (d *ModDetail) readLanguages(src archive.Handle, descRoot *xmltree.Node, entries []archive.Entry) {
	lang := descRoot.First("l10n")
	if lang == nil {
		return
	}

	for _, text := range lang.Children {
		key, ok := text.Attr("name")
		if !ok {
			continue
		}
		for _, trans := range text.Children {
			if trans.Name == "" {
				continue
			}
			d.addLang(trans.Name, key, trans.Text())
		}
	}

	prefix, ok := lang.Attr("filenamePrefix")
	if !ok {
		return
	}
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name, prefix) || len(entry.Name) < 6 {
			continue
		}
		// languages/l10n_en.xml carries its language code right
		// before the extension.
		code := entry.Name[len(entry.Name)-6 : len(entry.Name)-4]

		raw, err := src.ReadText(entry.Name)
		if err != nil {
			continue
		}
		root, err := xmltree.Parse(strings.NewReader(raw))
		if err != nil {
			continue
		}

		for _, text := range root.All("text") {
			key, ok := text.Attr("name")
			if !ok {
				continue
			}
			value, ok := text.Attr("text")
			if !ok {
				continue
			}
			d.addLang(code, key, value)
		}
		for _, text := range root.All("e") {
			key, ok := text.Attr("k")
			if !ok {
				continue
			}
			value, ok := text.Attr("v")
			if !ok {
				continue
			}
			d.addLang(code, key, value)
		}
	}
}

// readBrands collects brand registrations. Brand keys are upper cased to
// match how the game resolves them from store item XML.
func (d *ModDetail) readBrands(ctx context.Context, src archive.Handle, descRoot *xmltree.Node, opts Options) {
	brands := descRoot.First("brands")
	if brands == nil {
		return
	}

	for _, node := range brands.ChildrenNamed("brand") {
		name, ok := node.Attr("name")
		if !ok {
			continue
		}
		b := d.addBrand(strings.ToUpper(name), optAttr(node, "title"))

		raw, ok := node.Attr("image")
		if !ok {
			continue
		}
		ref, ok := normalizeImage(raw)
		if !ok {
			continue
		}
		b.IconOrig = &raw

		if opts.SkipIcons {
			continue
		}
		if ref.baseGame {
			b.IconBase = &ref.name
			continue
		}
		bin, err := src.ReadBytes(ref.name)
		if err != nil {
			d.AddIssue(IssueMissingIcon)
			continue
		}
		if icon, ok := opts.converter().Convert(ctx, bin); ok {
			b.IconFile = &icon
		}
	}
}

// optAttr returns a pointer to the named attribute's value, nil when the
// attribute is absent.
func optAttr(n *xmltree.Node, name string) *string {
	if value, ok := n.Attr(name); ok {
		return &value
	}
	return nil
}

// optText returns a pointer to the first matching element's text, nil when
// no such element exists or its text is empty.
func optText(n *xmltree.Node, name string) *string {
	if value, ok := n.FirstText(name); ok && value != "" {
		return &value
	}
	return nil
}

// textUint parses the first matching element's text as an unsigned number,
// falling back to def when the element is absent or not numeric.
func textUint(n *xmltree.Node, name string, def int) int {
	value, ok := n.FirstText(name)
	if !ok {
		return def
	}
	parsed, err := parseUint(value)
	if err != nil {
		return def
	}
	return parsed
}

// optTextUint is textUint with absence reported as nil.
func optTextUint(n *xmltree.Node, name string) *int {
	value, ok := n.FirstText(name)
	if !ok {
		return nil
	}
	parsed, err := parseUint(value)
	if err != nil {
		return nil
	}
	return &parsed
}

func parseUint(s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	return int(v), err
}

// floatOr parses raw as a float, falling back to def.
func floatOr(raw string, def float64) float64 {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return value
}

// sortDedup sorts the list and drops adjacent duplicates in place.
func sortDedup(in []string) []string {
	slices.Sort(in)
	return slices.Compact(in)
}
