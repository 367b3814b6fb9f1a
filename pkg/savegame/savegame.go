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

// Package savegame parses FS22 save-game folders and archives.
//
// A save game is a set of sibling XML files; each section parses
// independently so a damaged vehicles file does not hide the farm
// roster. Issue tokens are stable wire strings, including the
// historical PLACABLE spelling.
package savegame

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/fsgmodding/modcheck/pkg/archive"
	"github.com/fsgmodding/modcheck/pkg/xmltree"
)

// Issue is a stable save-game problem token.
type Issue string

const (
	IssueUnreadable       Issue = "SAVE_ERROR_UNREADABLE"
	IssueFarmsMissing     Issue = "SAVE_ERROR_MISSING_FARMS"
	IssueFarmsParse       Issue = "SAVE_ERROR_PARSE_FARMS"
	IssuePlaceableMissing Issue = "SAVE_ERROR_MISSING_PLACABLE"
	IssuePlaceableParse   Issue = "SAVE_ERROR_PARSE_PLACABLE"
	IssueVehicleMissing   Issue = "SAVE_ERROR_MISSING_VEHICLE"
	IssueVehicleParse     Issue = "SAVE_ERROR_PARSE_VEHICLE"
	IssueCareerMissing    Issue = "SAVE_ERROR_MISSING_CAREER"
	IssueCareerParse      Issue = "SAVE_ERROR_PARSE_CAREER"
)

// Farm is one farm in the save.
type Farm struct {
	Name  string `json:"name"`
	Cash  int64  `json:"cash"`
	Loan  int64  `json:"loan"`
	Color int    `json:"color"`
}

// Mod is one mod the save depends on, with the farms using it.
type Mod struct {
	Version string `json:"version"`
	Title   string `json:"title"`
	Farms   []int  `json:"farms"`
}

// Record is the parsed view of one save game.
type Record struct {
	ErrorList  []Issue        `json:"errorList"`
	Farms      map[int]Farm   `json:"farms"`
	IsValid    bool           `json:"isValid"`
	MapMod     *string        `json:"mapMod"`
	MapTitle   string         `json:"mapTitle"`
	Mods       map[string]Mod `json:"mods"`
	Name       string         `json:"name"`
	SingleFarm bool           `json:"singleFarm"`
}

func newRecord() *Record {
	return &Record{
		ErrorList: []Issue{},
		Farms: map[int]Farm{
			0: {Name: "--unowned--", Color: 1},
		},
		IsValid:    true,
		MapTitle:   "--",
		Mods:       map[string]Mod{},
		Name:       "--",
		SingleFarm: true,
	}
}

func (r *Record) addIssue(i Issue) {
	r.IsValid = false
	for _, have := range r.ErrorList {
		if have == i {
			return
		}
	}
	r.ErrorList = append(r.ErrorList, i)
}

// Parse opens the save game at path and reads it. An unopenable path
// yields a record carrying only SAVE_ERROR_UNREADABLE.
func Parse(path string) *Record {
	src, err := archive.Open(path)
	if err != nil {
		r := newRecord()
		r.addIssue(IssueUnreadable)
		return r
	}
	defer func() { _ = src.Close() }()

	return Read(src)
}

// Read parses a save game from an already opened package.
func Read(src archive.Handle) *Record {
	r := newRecord()

	r.readFarms(src)
	r.readCareer(src)
	r.readUsage(src, "vehicles.xml", "vehicle", IssueVehicleMissing, IssueVehicleParse)
	r.readUsage(src, "placeables.xml", "placeable", IssuePlaceableMissing, IssuePlaceableParse)

	sort.Slice(r.ErrorList, func(i, j int) bool { return r.ErrorList[i] < r.ErrorList[j] })
	for name, m := range r.Mods {
		sort.Ints(m.Farms)
		r.Mods[name] = m
	}
	return r
}

func (r *Record) readFarms(src archive.Handle) {
	text, err := src.ReadText("farms.xml")
	if err != nil {
		r.addIssue(IssueFarmsMissing)
		return
	}
	root, err := xmltree.ParseBytes([]byte(text))
	if err != nil {
		r.addIssue(IssueFarmsParse)
		return
	}

	for _, farm := range root.All("farm") {
		id, ok := farm.AttrInt("farmId")
		if !ok {
			continue
		}
		name, ok := farm.Attr("name")
		if !ok {
			continue
		}

		entry := Farm{Name: name, Color: 1}
		entry.Loan = moneyAttr(farm, "loan")
		entry.Cash = moneyAttr(farm, "money")
		if c, ok := farm.AttrInt("color"); ok {
			entry.Color = c
		}

		r.Farms[id] = entry
	}

	player := 0
	for id := range r.Farms {
		if id != 0 {
			player++
		}
	}
	r.SingleFarm = player <= 1
}

// moneyAttr parses a currency attribute, which the game writes as a
// float, down to whole units.
func moneyAttr(n *xmltree.Node, name string) int64 {
	v, ok := n.Attr(name)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return int64(f)
}

func (r *Record) readCareer(src archive.Handle) {
	text, err := src.ReadText("careerSavegame.xml")
	if err != nil {
		r.addIssue(IssueCareerMissing)
		return
	}
	root, err := xmltree.ParseBytes([]byte(text))
	if err != nil {
		r.addIssue(IssueCareerParse)
		return
	}

	if v, ok := root.FirstText("savegameName"); ok && v != "" {
		r.Name = v
	}
	if v, ok := root.FirstText("mapTitle"); ok && v != "" {
		r.MapTitle = v
	}

	for _, mod := range root.All("mod") {
		name, ok := mod.Attr("modName")
		if !ok {
			continue
		}
		entry := Mod{Version: "0", Title: "--", Farms: []int{}}
		if v, ok := mod.Attr("version"); ok {
			entry.Version = v
		}
		if v, ok := mod.Attr("title"); ok {
			entry.Title = v
		}
		r.Mods[name] = entry
	}

	// The mapId leads with the providing mod's name, so a prefix that
	// matches a loaded mod marks the save as running on a mod map.
	if mapID, ok := root.FirstText("mapId"); ok {
		prefix, _, _ := strings.Cut(mapID, ".")
		if _, ok := r.Mods[prefix]; ok {
			r.MapMod = &prefix
		}
	}
}

// readUsage records which farms use which mods from a vehicles or
// placeables file.
func (r *Record) readUsage(src archive.Handle, file, tag string, missing, parseFail Issue) {
	text, err := src.ReadText(file)
	if err != nil {
		r.addIssue(missing)
		return
	}
	root, err := xmltree.ParseBytes([]byte(text))
	if err != nil {
		r.addIssue(parseFail)
		return
	}

	for _, item := range root.All(tag) {
		modName, ok := item.Attr("modName")
		if !ok {
			continue
		}
		farmID, ok := item.AttrInt("farmId")
		if !ok {
			continue
		}
		entry, ok := r.Mods[modName]
		if !ok {
			continue
		}

		seen := false
		for _, id := range entry.Farms {
			if id == farmID {
				seen = true
				break
			}
		}
		if !seen {
			entry.Farms = append(entry.Farms, farmID)
			r.Mods[modName] = entry
		}
	}
}

// String renders the record as compact JSON, "{}" if it cannot be
// marshaled.
func (r *Record) String() string {
	out, err := json.Marshal(r)
	if err != nil {
		return "{}"
	}
	return string(out)
}
