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

import (
	"encoding/json"
	"strings"
)

// Weather maps a season name to its temperature extremes in degrees
// Celsius, keyed "min" and "max".
type Weather map[string]map[string]int8

// Crop is one row of a map's planting calendar. Periods are 1-based
// month indexes where the first month of spring is 1.
type Crop struct {
	Name           string `json:"name"`
	GrowthTime     int    `json:"growthTime"`
	HarvestPeriods []int  `json:"harvestPeriods"`
	PlantPeriods   []int  `json:"plantPeriods"`
}

// MarshalJSON emits the crop with its name folded to lower case, which
// is how downstream display layers key the calendar.
func (c Crop) MarshalJSON() ([]byte, error) {
	type alias Crop
	a := alias(c)
	a.Name = strings.ToLower(a.Name)
	return json.Marshal(a)
}

// CropList is an ordered planting calendar. An empty calendar
// serializes as null so consumers can tell "not a map" from "a map
// with no crops".
type CropList []Crop

// MarshalJSON implements json.Marshaler.
func (l CropList) MarshalJSON() ([]byte, error) {
	if len(l) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal([]Crop(l))
}

// Info carries everything learned from a map package's config file.
type Info struct {
	// CropInfo is the planting calendar, from the map's growth
	// definition when it ships one or the stock calendar otherwise.
	CropInfo CropList

	// Weather holds per-season temperature ranges. Nil only when the
	// package is not a map.
	Weather Weather

	// IsSouth reports a southern-hemisphere map.
	IsSouth bool

	// Image is the converted map overview image, empty when the image
	// was missing or the converter produced nothing.
	Image string

	// CustomEnv, CustomFruits, and CustomGrowth report whether the
	// config referenced in-package files rather than stock game data.
	CustomEnv    bool
	CustomFruits bool
	CustomGrowth bool
}
