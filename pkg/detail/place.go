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
	"context"
	"maps"
	"slices"
	"strings"

	"github.com/fsgmodding/modcheck/pkg/archive"
	"github.com/fsgmodding/modcheck/pkg/xmltree"
)

// Place is one store placeable record.
type Place struct {
	Animals     PlaceAnimals `json:"animals"`
	IconBase    *string      `json:"iconBase"`
	IconFile    *string      `json:"iconFile"`
	IconOrig    *string      `json:"iconOrig"`
	MasterType  string       `json:"masterType"`
	ParentItem  *string      `json:"parentItem"`
	Productions []Production `json:"productions"`
	Sorting     PlaceSorting `json:"sorting"`
	Storage     PlaceStorage `json:"storage"`
}

// PlaceSorting carries the fields the shop sorts and filters on.
type PlaceSorting struct {
	Category      *string  `json:"category"`
	Functions     []string `json:"functions"`
	HasColor      bool     `json:"hasColor"`
	IncomePerHour int      `json:"incomePerHour"`
	Name          *string  `json:"name"`
	Price         int      `json:"price"`
	TypeName      *string  `json:"typeName"`
}

// PlaceAnimals describes beehives and animal pens.
type PlaceAnimals struct {
	BeehiveExists    bool    `json:"beehiveExists"`
	BeehivePerDay    int     `json:"beehivePerDay"`
	BeehiveRadius    int     `json:"beehiveRadius"`
	HusbandryAnimals int     `json:"husbandryAnimals"`
	HusbandryExists  bool    `json:"husbandryExists"`
	HusbandryType    *string `json:"husbandryType"`
}

// PlaceStorage describes object storage slots and silo capacity.
type PlaceStorage struct {
	Objects       *int     `json:"objects"`
	SiloCapacity  int      `json:"siloCapacity"`
	SiloExists    bool     `json:"siloExists"`
	SiloFillCats  []string `json:"siloFillCats"`
	SiloFillTypes []string `json:"siloFillTypes"`
}

// Production is one production line. Recipe entries on the outer level are
// all required; entries in an inner list are alternatives.
type Production struct {
	Boosts        []Boost        `json:"boosts"`
	CostPerHour   float64        `json:"costPerHour"`
	CyclesPerHour float64        `json:"cyclesPerHour"`
	Name          string         `json:"name"`
	Output        []Ingredient   `json:"output"`
	Params        string         `json:"params"`
	Recipe        [][]Ingredient `json:"recipe"`
}

// Ingredient is one fill type with a quantity.
type Ingredient struct {
	Amount   float64 `json:"amount"`
	FillType string  `json:"fillType"`
}

// Boost is an optional extra input that speeds a production up.
type Boost struct {
	Amount      float64 `json:"amount"`
	BoostFactor float64 `json:"boostFactor"`
	FillType    string  `json:"fillType"`
}

func newPlace() *Place {
	return &Place{
		MasterType:  "placeable",
		Productions: []Production{},
		Sorting: PlaceSorting{
			Functions: []string{},
		},
		Storage: PlaceStorage{
			SiloFillCats:  []string{},
			SiloFillTypes: []string{},
		},
	}
}

func parsePlace(ctx context.Context, src archive.Handle, root *xmltree.Node, opts Options) *Place {
	p := newPlace()

	placeSorting(root, p)
	placeStorage(root, p)
	placeAnimals(root, p)

	for _, node := range root.All("production") {
		p.Productions = append(p.Productions, parseProduction(node))
	}

	raw, ref, ok := firstImage(root, "image")
	if !ok {
		return p
	}
	p.IconOrig = &raw
	if opts.SkipIcons {
		return p
	}
	if ref.baseGame {
		p.IconBase = &ref.name
		return p
	}
	if bin, err := src.ReadBytes(ref.name); err == nil {
		if icon, ok := opts.converter().Convert(ctx, bin); ok {
			p.IconFile = &icon
		}
	}
	return p
}

func placeSorting(root *xmltree.Node, p *Place) {
	p.Sorting.Category = optText(root, "category")
	p.Sorting.IncomePerHour = textUint(root, "incomePerHour", 0)
	p.Sorting.Name = optText(root, "name")
	p.Sorting.Price = textUint(root, "price", 0)
	p.Sorting.TypeName = optAttr(root, "type")

	// One color entry is the default coat; more means a color choice.
	p.Sorting.HasColor = len(root.All("color")) > 1

	for _, fn := range root.All("function") {
		if text := fn.Text(); text != "" {
			p.Sorting.Functions = append(p.Sorting.Functions, text)
		}
	}
}

func placeStorage(root *xmltree.Node, p *Place) {
	if store := root.Child("objectStorage"); store != nil {
		objects := attrUintOr(store, "capacity", 250)
		p.Storage.Objects = &objects
	}

	silo := firstOf(root, "silo", "siloExtension")
	if silo == nil {
		return
	}
	p.Storage.SiloExists = true

	for _, unit := range silo.All("storage") {
		if raw, ok := unit.Attr("capacity"); ok {
			if capacity, err := parseUint(raw); err == nil {
				p.Storage.SiloCapacity += capacity
			}
		}
		if cats, ok := unit.Attr("fillTypeCategories"); ok {
			p.Storage.SiloFillCats = append(p.Storage.SiloFillCats, splitLower(cats)...)
		}
		if types, ok := unit.Attr("fillTypes"); ok {
			p.Storage.SiloFillTypes = append(p.Storage.SiloFillTypes, splitLower(types)...)
		}
	}

	p.Storage.SiloFillCats = sortDedup(p.Storage.SiloFillCats)
	p.Storage.SiloFillTypes = sortDedup(p.Storage.SiloFillTypes)
}

func placeAnimals(root *xmltree.Node, p *Place) {
	if hive := root.First("beehive"); hive != nil {
		p.Animals.BeehiveExists = true
		p.Animals.BeehivePerDay = attrUintOr(hive, "litersHoneyPerDay", 0)
		p.Animals.BeehiveRadius = attrUintOr(hive, "actionRadius", 0)
	}

	if pen := root.First("animals"); pen != nil {
		p.Animals.HusbandryExists = true
		p.Animals.HusbandryAnimals = attrUintOr(pen, "maxNumAnimals", 0)
		p.Animals.HusbandryType = optAttr(pen, "type")
	}
}

func parseProduction(node *xmltree.Node) Production {
	p := Production{
		Boosts:        []Boost{},
		CostPerHour:   1,
		CyclesPerHour: 1,
		Name:          "--",
		Output:        []Ingredient{},
		Recipe:        [][]Ingredient{},
	}

	if name, ok := node.Attr("name"); ok {
		p.Name = name
	}
	if params, ok := node.Attr("params"); ok {
		p.Params = params
	}
	p.CostPerHour = hourlyRate(node, "costsPerActiveHour", "costsPerActiveMinute", "costsPerActiveMonth", p.CostPerHour)
	p.CyclesPerHour = hourlyRate(node, "cyclesPerActiveHour", "cyclesPerActiveMinute", "cyclesPerActiveMonth", p.CyclesPerHour)

	for _, out := range node.All("output") {
		fill, ok := out.Attr("fillType")
		if !ok {
			continue
		}
		amount, ok := out.AttrFloat("amount")
		if !ok {
			continue
		}
		p.Output = append(p.Output, Ingredient{Amount: amount, FillType: strings.ToLower(fill)})
	}

	// Inputs without a mix attribute are each required on their own.
	// Inputs sharing a mix index are alternatives for one slot, and
	// mix="boost" marks an optional accelerant.
	mixes := map[string][]Ingredient{}
	for _, in := range node.All("input") {
		fill, ok := in.Attr("fillType")
		if !ok {
			continue
		}
		amount, ok := in.AttrFloat("amount")
		if !ok {
			continue
		}

		mix, mixed := in.Attr("mix")
		switch {
		case mixed && mix == "boost":
			factor, ok := in.AttrFloat("boostfactor")
			if !ok {
				continue
			}
			p.Boosts = append(p.Boosts, Boost{Amount: amount, BoostFactor: factor, FillType: strings.ToLower(fill)})
		case mixed:
			mixes[mix] = append(mixes[mix], Ingredient{Amount: amount, FillType: strings.ToLower(fill)})
		default:
			p.Recipe = append(p.Recipe, []Ingredient{{Amount: amount, FillType: strings.ToLower(fill)}})
		}
	}

	for _, mix := range slices.Sorted(maps.Keys(mixes)) {
		p.Recipe = append(p.Recipe, mixes[mix])
	}

	return p
}

// hourlyRate reads a production rate given per hour, minute, or month and
// normalizes it to hourly. A month of game time is 24 hours.
func hourlyRate(node *xmltree.Node, hour, minute, month string, def float64) float64 {
	if raw, ok := node.Attr(hour); ok {
		if value, err := parseUint(raw); err == nil {
			return float64(value)
		}
		return def
	}
	if raw, ok := node.Attr(minute); ok {
		if value, err := parseUint(raw); err == nil {
			return float64(value * 60)
		}
		return def
	}
	if raw, ok := node.Attr(month); ok {
		if value, err := parseUint(raw); err == nil {
			return float64(value / 24)
		}
		return def
	}
	return def
}

func attrUintOr(n *xmltree.Node, name string, def int) int {
	raw, ok := n.Attr(name)
	if !ok {
		return def
	}
	value, err := parseUint(raw)
	if err != nil {
		return def
	}
	return value
}

// firstOf returns the first element carrying any of the given names,
// searching depth first in document order.
func firstOf(n *xmltree.Node, names ...string) *xmltree.Node {
	if slices.Contains(names, n.Name) {
		return n
	}
	for _, c := range n.Children {
		if found := firstOf(c, names...); found != nil {
			return found
		}
	}
	return nil
}
