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

package growth

import "slices"

// Calendar entries that never appear in output.
var skipCrops = []string{"meadow", "unknown"}

func skipCrop(name string) bool {
	return slices.Contains(skipCrops, name)
}

// fruitStates describes how a fruit advances through growth states.
type fruitStates struct {
	name       string
	maxHarvest int
	minHarvest int
	states     int
}

// Stock FS22 fruit state table.
var baseFruitStates = []fruitStates{
	{"wheat", 8, 8, 8},
	{"barley", 7, 7, 7},
	{"canola", 9, 9, 9},
	{"oat", 5, 5, 5},
	{"maize", 7, 7, 7},
	{"sunflower", 8, 8, 8},
	{"soybean", 7, 7, 7},
	{"potato", 6, 6, 6},
	{"sugarbeet", 8, 8, 8},
	{"sugarcane", 8, 8, 8},
	{"cotton", 9, 9, 9},
	{"sorghum", 5, 5, 5},
	{"grape", 11, 10, 7},
	{"olive", 10, 9, 7},
	{"poplar", 14, 14, 14},
	{"grass", 4, 3, 4},
	{"oilseedradish", 2, 2, 2},
}

func baseGameFruitStates() []fruitStates {
	return slices.Clone(baseFruitStates)
}

// Stock FS22 weather tables keyed by base game map.
var baseWeather = map[string]Weather{
	"mapUS": {
		"spring": {"min": 6, "max": 18},
		"summer": {"min": 13, "max": 34},
		"autumn": {"min": 5, "max": 25},
		"winter": {"min": -11, "max": 10},
	},
	"mapFR": {
		"spring": {"min": 6, "max": 18},
		"summer": {"min": 13, "max": 34},
		"autumn": {"min": 5, "max": 25},
		"winter": {"min": -11, "max": 10},
	},
	"mapAlpine": {
		"spring": {"min": 5, "max": 18},
		"summer": {"min": 10, "max": 30},
		"autumn": {"min": 4, "max": 22},
		"winter": {"min": -12, "max": 8},
	},
}

// BaseWeather returns a copy of the stock weather table for a base game
// map key, falling back to the mapUS table when the key is unknown.
func BaseWeather(key string) Weather {
	table, ok := baseWeather[key]
	if !ok {
		table = baseWeather["mapUS"]
	}

	out := make(Weather, len(table))
	for season, r := range table {
		out[season] = map[string]int8{"min": r["min"], "max": r["max"]}
	}
	return out
}

// Stock FS22 planting calendar.
var baseCrops = CropList{
	{Name: "wheat", GrowthTime: 8, HarvestPeriods: []int{5, 6}, PlantPeriods: []int{7, 8}},
	{Name: "barley", GrowthTime: 7, HarvestPeriods: []int{4, 5}, PlantPeriods: []int{7, 8}},
	{Name: "canola", GrowthTime: 9, HarvestPeriods: []int{5, 6}, PlantPeriods: []int{6, 7}},
	{Name: "oat", GrowthTime: 5, HarvestPeriods: []int{5, 6}, PlantPeriods: []int{1, 2}},
	{Name: "maize", GrowthTime: 7, HarvestPeriods: []int{8, 9}, PlantPeriods: []int{2, 3}},
	{Name: "sunflower", GrowthTime: 8, HarvestPeriods: []int{8, 9}, PlantPeriods: []int{1, 2}},
	{Name: "soybean", GrowthTime: 7, HarvestPeriods: []int{8, 9}, PlantPeriods: []int{2, 3}},
	{Name: "potato", GrowthTime: 6, HarvestPeriods: []int{6, 7}, PlantPeriods: []int{1, 2}},
	{Name: "sugarbeet", GrowthTime: 8, HarvestPeriods: []int{8, 9}, PlantPeriods: []int{1, 2}},
	{Name: "sugarcane", GrowthTime: 8, HarvestPeriods: []int{8, 9}, PlantPeriods: []int{1, 2}},
	{Name: "cotton", GrowthTime: 9, HarvestPeriods: []int{8, 9}, PlantPeriods: []int{1, 12}},
	{Name: "sorghum", GrowthTime: 5, HarvestPeriods: []int{6, 7}, PlantPeriods: []int{2, 3}},
	{Name: "grape", GrowthTime: 7, HarvestPeriods: []int{7, 8}, PlantPeriods: []int{1, 2, 3}},
	{Name: "olive", GrowthTime: 7, HarvestPeriods: []int{8}, PlantPeriods: []int{1, 2, 3, 4}},
	{Name: "poplar", GrowthTime: 14, HarvestPeriods: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, PlantPeriods: []int{1, 2, 3, 4, 5, 6}},
	{Name: "grass", GrowthTime: 4, HarvestPeriods: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, PlantPeriods: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
	{Name: "oilseedradish", GrowthTime: 2, HarvestPeriods: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, PlantPeriods: []int{1, 2, 3, 4, 5, 6, 7, 8}},
}

// BaseCrops returns a copy of the stock planting calendar.
func BaseCrops() CropList {
	out := make(CropList, len(baseCrops))
	for i, c := range baseCrops {
		out[i] = Crop{
			Name:           c.Name,
			GrowthTime:     c.GrowthTime,
			HarvestPeriods: slices.Clone(c.HarvestPeriods),
			PlantPeriods:   slices.Clone(c.PlantPeriods),
		}
	}
	return out
}
