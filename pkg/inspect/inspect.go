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

// Package inspect runs the full inspection pipeline over a single mod
// package: naming rules, archive access, save game and mod pack
// detection, content accounting, descriptor extraction, script
// scanning, and map calendar decoding.
//
// Inspect never returns an error for conditions a broken package can
// cause; every such condition becomes an issue on the record, with
// fatal ones short-circuiting the remaining steps. An Inspector is
// immutable after construction and safe for concurrent use; each call
// owns its package handle exclusively.
package inspect

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/fsgmodding/modcheck/pkg/archive"
	"github.com/fsgmodding/modcheck/pkg/detail"
	"github.com/fsgmodding/modcheck/pkg/growth"
	"github.com/fsgmodding/modcheck/pkg/issue"
	"github.com/fsgmodding/modcheck/pkg/moddesc"
	"github.com/fsgmodding/modcheck/pkg/record"
	"github.com/fsgmodding/modcheck/pkg/savegame"
	"github.com/fsgmodding/modcheck/pkg/thumb"
)

// saveGameMarker at the package root means this is a save, not a mod.
const saveGameMarker = "careerSavegame.xml"

// mapDescVersion is the first descriptor schema with map calendar data.
const mapDescVersion = 60

// Option configures an Inspector.
type Option func(*Inspector)

// Inspector runs inspection pipelines with a fixed configuration.
type Inspector struct {
	collection      string
	converter       thumb.Converter
	detail          bool
	saveGame        bool
	skipIcons       bool
	skipDetailIcons bool
	version         string
}

// New returns an Inspector with the given options applied. The zero
// configuration inspects without detail, save game parsing, or icon
// conversion.
func New(opts ...Option) *Inspector {
	ins := &Inspector{}
	for _, opt := range opts {
		opt(ins)
	}
	return ins
}

// WithCollection sets the collection name stamped on every record.
// Default is none.
func WithCollection(name string) Option {
	return func(ins *Inspector) {
		ins.collection = name
	}
}

// WithConverter sets the thumbnail converter for package, map, and
// store item images. Default is none, which records image references
// without converting them.
func WithConverter(c thumb.Converter) Option {
	return func(ins *Inspector) {
		ins.converter = c
	}
}

// WithDetail sets whether to extract the store item catalog (vehicles,
// placeables, brands) after the base inspection. Default is false.
func WithDetail(v bool) Option {
	return func(ins *Inspector) {
		ins.detail = v
	}
}

// WithSaveGame sets whether a detected save game is parsed into the
// record rather than only flagged. Default is false.
func WithSaveGame(v bool) Option {
	return func(ins *Inspector) {
		ins.saveGame = v
	}
}

// WithSkipIcons sets whether package level images (mod icon, map
// overview) skip thumbnail conversion. Default is false.
func WithSkipIcons(v bool) Option {
	return func(ins *Inspector) {
		ins.skipIcons = v
	}
}

// WithSkipDetailIcons sets whether store item and brand icons skip
// thumbnail conversion during detail extraction. Default is false.
func WithSkipDetailIcons(v bool) Option {
	return func(ins *Inspector) {
		ins.skipDetailIcons = v
	}
}

// WithVersion sets the tool version reported alongside scan results.
// Default is empty.
func WithVersion(v string) Option {
	return func(ins *Inspector) {
		ins.version = v
	}
}

// Version returns the tool version the Inspector was configured with.
func (ins *Inspector) Version() string {
	return ins.version
}

// Inspect evaluates one package and returns its record. The record is
// always complete enough to serialize, whatever state the package is
// in.
func (ins *Inspector) Inspect(ctx context.Context, path string) *record.Record {
	start := time.Now()

	fi, statErr := os.Stat(path)
	isFolder := statErr == nil && fi.IsDir()

	rec := record.New(path, isFolder)
	rec.CurrentCollection = ins.collection

	defer func() {
		status := "usable"
		if rec.CanNotUse {
			status = "unusable"
		}
		inspectionsTotal.WithLabelValues(status).Inc()
		inspectionDuration.Observe(time.Since(start).Seconds())
		inspectionIssues.Observe(float64(rec.Issues.Len()))

		slog.Debug("inspection complete",
			slog.String("name", rec.FileDetail.ShortName),
			slog.Int("issues", rec.Issues.Len()),
			slog.Bool("usable", !rec.CanNotUse))
	}()

	slog.Debug("inspecting package",
		slog.String("path", path),
		slog.Bool("folder", isFolder))

	if !checkName(rec) {
		rec.AddFatal(issue.NameInvalid)
		rec.UpdateBadges()
		return rec
	}
	rec.CanNotUse = false

	// The game loads folder mods, but multiplayer sessions reject them.
	if isFolder {
		rec.AddIssue(issue.NoMultiplayerUnzipped)
	}

	src, err := archive.Open(path)
	if err != nil {
		rec.AddFatal(issue.UnreadableZip)
		rec.UpdateBadges()
		return rec
	}
	defer src.Close()

	entries := src.List()

	if statErr == nil {
		rec.FileDetail.FileDate = fi.ModTime().UTC().Format(time.RFC3339)
		if src.IsFolder() {
			var total int64
			for _, e := range entries {
				total += e.Size
			}
			rec.FileDetail.FileSize = total
		} else {
			rec.FileDetail.FileSize = fi.Size()
		}
	}

	if src.Exists(saveGameMarker) {
		rec.FileDetail.IsSaveGame = true
		rec.AddFatal(issue.LikelySaveGame)
		rec.UpdateBadges()
		if ins.saveGame {
			rec.IncludeSaveGame = savegame.Read(src)
		}
		return rec
	}

	if !src.IsFolder() {
		if zips, ok := zipPack(entries); ok {
			rec.FileDetail.ZipFiles = zips
			rec.FileDetail.IsModPack = true
			rec.AddFatal(issue.LikelyZipPack)
			rec.UpdateBadges()
			return rec
		}
	}

	root, ok := moddesc.Load(rec, src)
	if !ok {
		rec.UpdateBadges()
		return rec
	}

	countContent(rec, entries)
	moddesc.Extract(rec, root)

	if name := rec.ModDesc.IconFileName; name != nil && !ins.skipIcons {
		if raw, rerr := src.ReadBytes(*name); rerr == nil {
			if img, converted := ins.conv().Convert(ctx, raw); converted {
				rec.ModDesc.IconImage = &img
			}
		}
	}

	scanScripts(rec, src, entries)

	if rec.ModDesc.DescVersion >= mapDescVersion && rec.ModDesc.MapConfigFile != nil {
		ins.readMap(ctx, rec, src)
	}

	rec.UpdateBadges()

	if ins.detail {
		rec.IncludeDetail = detail.Read(ctx, src, root, entries, detail.Options{
			SkipIcons: ins.skipDetailIcons,
			Converter: ins.converter,
		})
		rec.DetailIconLoaded = !ins.skipDetailIcons && ins.converter != nil
	}

	return rec
}

// readMap decodes crop calendars, weather, and the overview image from
// the map config the descriptor referenced.
func (ins *Inspector) readMap(ctx context.Context, rec *record.Record, src archive.Handle) {
	conv := ins.conv()
	if ins.skipIcons {
		conv = thumb.Noop()
	}

	info := growth.ReadMap(ctx, src, *rec.ModDesc.MapConfigFile, rec.FileDetail.ImageDDS, conv)

	desc := &rec.ModDesc
	desc.CropInfo = info.CropInfo
	desc.CropWeather = info.Weather
	desc.MapIsSouth = info.IsSouth
	if info.Image != "" {
		desc.MapImage = &info.Image
	}
	desc.MapCustomEnv = info.CustomEnv
	desc.MapCustomCrop = info.CustomFruits
	desc.MapCustomGrow = info.CustomGrowth
}

func (ins *Inspector) conv() thumb.Converter {
	if ins.converter == nil {
		return thumb.Noop()
	}
	return ins.converter
}

// zipPack reports whether the manifest holds nothing but zip files, the
// shape of a bundled download that must be unpacked before the game can
// see the mods inside.
func zipPack(entries []archive.Entry) ([]record.ZipEntry, bool) {
	if len(entries) == 0 {
		return nil, false
	}
	zips := make([]record.ZipEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir || e.Ext() != "zip" {
			return nil, false
		}
		zips = append(zips, record.ZipEntry{Name: e.Name, Size: e.Size})
	}
	return zips, true
}
