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

// Package growth decodes map packages: planting calendars, seasonal
// weather tables, hemisphere, and the map overview image.
//
// Map packages may ship their own environment, fruit type, and growth
// definitions or lean on stock game data. Anything the package does not
// override falls back to the stock FS22 tables, so a map never produces
// an empty calendar just because it reuses base game files.
package growth

import (
	"context"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/fsgmodding/modcheck/pkg/archive"
	"github.com/fsgmodding/modcheck/pkg/thumb"
	"github.com/fsgmodding/modcheck/pkg/xmltree"
)

// Base game environment references look like
// "$data/maps/mapUS/environment.xml".
var baseMapKeyPattern = regexp.MustCompile(`map[A-Z][A-Za-z]+`)

// ReadMap decodes the planting calendar, weather table, hemisphere, and
// overview image referenced by a map config file. ddsNames is the
// package's DDS manifest, used to validate the overview image
// reference. The converter receives the raw image bytes; when it
// declines, Image is left empty.
func ReadMap(ctx context.Context, src archive.Handle, configFile string, ddsNames []string, conv thumb.Converter) Info {
	var info Info
	var fruitsFile, growthFile, envFile, envBase string

	if text, err := src.ReadText(configFile); err == nil {
		if root, perr := xmltree.ParseBytes([]byte(text)); perr == nil {
			info.Image = readMapImage(ctx, src, root, ddsNames, conv)
			fruitsFile = supportFile(root, "fruitTypes")
			growthFile = supportFile(root, "growth")
			envFile = supportFile(root, "environment")
			envBase = baseGameKey(root)
		}
	}

	info.CustomEnv = envFile != ""
	info.CustomFruits = fruitsFile != ""
	info.CustomGrowth = growthFile != ""

	switch {
	case envBase != "":
		info.Weather = BaseWeather(envBase)
	case envFile != "":
		info.Weather, info.IsSouth = readEnvironment(src, envFile)
	default:
		info.Weather = BaseWeather("mapUS")
	}

	if growthFile == "" {
		info.CropInfo = BaseCrops()
		return info
	}

	info.CropInfo = readGrowth(src, growthFile, readFruitStates(src, fruitsFile))
	return info
}

// readMapImage resolves the overview image named by the config root,
// swaps its .png suffix for the .dds actually shipped, and converts it.
func readMapImage(ctx context.Context, src archive.Handle, root *xmltree.Node, ddsNames []string, conv thumb.Converter) string {
	name, ok := root.Attr("imageFilename")
	if !ok {
		return ""
	}
	if i := strings.Index(name, ".png"); i >= 0 {
		name = name[:i] + ".dds"
	}
	if !slices.Contains(ddsNames, name) {
		return ""
	}
	raw, err := src.ReadBytes(name)
	if err != nil {
		return ""
	}
	if img, ok := conv.Convert(ctx, raw); ok {
		return img
	}
	return ""
}

// supportFile returns the in-package path of a map support file, or ""
// when the config omits it or points at stock game data.
func supportFile(root *xmltree.Node, tag string) string {
	n := root.First(tag)
	if n == nil {
		return ""
	}
	name, ok := n.Attr("filename")
	if !ok || strings.HasPrefix(name, "$data") {
		return ""
	}
	return name
}

// baseGameKey extracts the stock map key from a "$data" environment
// reference, "" when the map ships its own environment.
func baseGameKey(root *xmltree.Node) string {
	n := root.First("environment")
	if n == nil {
		return ""
	}
	name, ok := n.Attr("filename")
	if !ok || !strings.HasPrefix(name, "$data") {
		return ""
	}
	return baseMapKeyPattern.FindString(name)
}

// readEnvironment derives the weather table and hemisphere from a
// custom environment file. Unreadable or unparsable files fall back to
// the mapUS stock table.
func readEnvironment(src archive.Handle, name string) (Weather, bool) {
	text, err := src.ReadText(name)
	if err != nil {
		return BaseWeather("mapUS"), false
	}
	root, err := xmltree.ParseBytes([]byte(text))
	if err != nil {
		return BaseWeather("mapUS"), false
	}

	south := false
	if n := root.First("latitude"); n != nil {
		lat := 0.1
		if v, perr := strconv.ParseFloat(n.Text(), 64); perr == nil {
			lat = v
		}
		south = lat < 0
	}

	weather := make(Weather)
	for _, season := range root.All("season") {
		name, ok := season.Attr("name")
		if !ok {
			continue
		}

		minTemp, maxTemp := int8(127), int8(-127)
		for _, variation := range season.All("variation") {
			low, okLow := variation.Attr("minTemperature")
			high, okHigh := variation.Attr("maxTemperature")
			if !okLow || !okHigh {
				continue
			}
			minTemp = min(minTemp, parseInt8(low, 127))
			maxTemp = max(maxTemp, parseInt8(high, -127))
		}

		weather[name] = map[string]int8{"min": minTemp, "max": maxTemp}
	}
	return weather, south
}

// readFruitStates builds the fruit state table from a custom fruit type
// file, falling back to the stock table when the file is absent or
// unusable. Absent or unparsable state attributes default to 20, which
// keeps such fruits out of every harvest window.
func readFruitStates(src archive.Handle, name string) []fruitStates {
	if name == "" {
		return baseGameFruitStates()
	}
	text, err := src.ReadText(name)
	if err != nil {
		return baseGameFruitStates()
	}
	root, err := xmltree.ParseBytes([]byte(text))
	if err != nil {
		return baseGameFruitStates()
	}

	var out []fruitStates
	for _, fruit := range root.All("fruitType") {
		fruitName := attrOr(fruit, "name", "unknown")
		if skipCrop(fruitName) {
			continue
		}

		fs := fruitStates{
			name:       fruitName,
			maxHarvest: childAttrSmallUint(fruit, "harvest", "maxHarvestingGrowthState", 20),
			minHarvest: childAttrSmallUint(fruit, "harvest", "minHarvestingGrowthState", 20),
			states:     childAttrSmallUint(fruit, "growth", "numGrowthStates", 20),
		}

		// Fruits needing preparation, like sugarbeet with a haulm
		// topper, harvest on the preparing window instead.
		for _, prep := range fruit.ChildrenNamed("preparing") {
			low, okLow := prep.Attr("minGrowthState")
			high, okHigh := prep.Attr("maxGrowthState")
			if !okLow && !okHigh {
				continue
			}
			if okLow {
				fs.minHarvest = parseSmallUint(low, fs.minHarvest)
			}
			if okHigh {
				fs.maxHarvest = parseSmallUint(high, fs.maxHarvest)
			}
			break
		}

		out = append(out, fs)
	}
	return out
}

// readGrowth replays a custom growth definition into harvest and plant
// windows. Unreadable or unparsable files fall back to the stock
// calendar.
func readGrowth(src archive.Handle, name string, states []fruitStates) CropList {
	text, err := src.ReadText(name)
	if err != nil {
		return BaseCrops()
	}
	root, err := xmltree.ParseBytes([]byte(text))
	if err != nil {
		return BaseCrops()
	}

	list := CropList{}
	for _, fruit := range root.All("fruit") {
		fruitName := attrOr(fruit, "name", "unknown")
		if skipCrop(fruitName) {
			continue
		}

		idx := slices.IndexFunc(states, func(fs fruitStates) bool { return fs.name == fruitName })
		if idx < 0 {
			continue
		}
		fs := states[idx]

		crop := Crop{
			Name:           fruitName,
			GrowthTime:     fs.states,
			HarvestPeriods: []int{},
			PlantPeriods:   []int{},
		}

		// The maximum growth state reached so far, carried across
		// periods so a fruit stays harvestable until something
		// resets it.
		lastMax := 0

		for _, period := range fruit.ChildrenNamed("period") {
			index, ok := period.Attr("index")
			if !ok {
				continue
			}
			periodIndex := parseSmallUint(index, 0)
			if periodIndex == 0 {
				continue
			}

			if v, ok := period.Attr("plantingAllowed"); ok && v == "true" {
				crop.PlantPeriods = append(crop.PlantPeriods, periodIndex)
			}

			dieBack := false
			for _, update := range period.ChildrenNamed("update") {
				if _, ok := update.Attr("set"); ok {
					// A set within the state count is die back; a set
					// beyond it is a regrow and leaves the state alone.
					r := decodeMaxRange(update)
					if r <= fs.states {
						lastMax = r
						dieBack = true
					}
				}
				if dieBack {
					continue
				}
				if add, ok := update.Attr("add"); ok {
					grown := decodeMaxRange(update) + parseSmallUint(add, 0)
					lastMax = max(lastMax, grown)
				}
			}

			if lastMax >= fs.minHarvest && lastMax <= fs.maxHarvest {
				crop.HarvestPeriods = append(crop.HarvestPeriods, periodIndex)
			}
		}

		list = append(list, crop)
	}
	return list
}

// decodeMaxRange reads an update's range attribute, which is either a
// single state or a "from-to" span, and returns the top of it.
func decodeMaxRange(update *xmltree.Node) int {
	rng, ok := update.Attr("range")
	if !ok {
		return 0
	}
	if i := strings.IndexByte(rng, '-'); i >= 0 {
		return parseSmallUint(rng[i+1:], 0)
	}
	return parseSmallUint(rng, 0)
}

func attrOr(n *xmltree.Node, name, def string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	return def
}

// childAttrSmallUint returns the named attribute of the first direct
// child carrying it, or def when no child does.
func childAttrSmallUint(n *xmltree.Node, child, attr string, def int) int {
	for _, c := range n.ChildrenNamed(child) {
		if v, ok := c.Attr(attr); ok {
			return parseSmallUint(v, def)
		}
	}
	return def
}

func parseSmallUint(s string, def int) int {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return def
	}
	return int(v)
}

func parseInt8(s string, def int8) int8 {
	v, err := strconv.ParseInt(s, 10, 8)
	if err != nil {
		return def
	}
	return int8(v)
}
