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

package record

import "github.com/fsgmodding/modcheck/pkg/growth"

// Descriptor is everything extracted from a package's modDesc.xml, plus
// the map data derived from the files it references.
type Descriptor struct {
	// Actions maps action names to their category.
	Actions map[string]string `json:"actions"`
	// Binds maps action names to bound inputs.
	Binds map[string][]string `json:"binds"`

	Author      string `json:"author"`
	ScriptFiles int    `json:"scriptFiles"`
	StoreItems  int    `json:"storeItems"`

	// CropInfo and CropWeather are only populated for map packages.
	CropInfo    growth.CropList `json:"cropInfo"`
	CropWeather growth.Weather  `json:"cropWeather"`

	Depend      []string `json:"depend"`
	DescVersion int      `json:"descVersion"`

	IconFileName *string `json:"iconFileName"`
	IconImage    *string `json:"iconImage"`

	MapConfigFile *string `json:"mapConfigFile"`
	MapCustomEnv  bool    `json:"mapCustomEnv"`
	MapCustomCrop bool    `json:"mapCustomCrop"`
	MapCustomGrow bool    `json:"mapCustomGrow"`
	MapIsSouth    bool    `json:"mapIsSouth"`
	MapImage      *string `json:"mapImage"`

	MultiPlayer bool   `json:"multiPlayer"`
	Version     string `json:"version"`
}

func newDescriptor() Descriptor {
	return Descriptor{
		Actions: map[string]string{},
		Binds:   map[string][]string{},
		Author:  "--",
		Depend:  []string{},
		Version: "--",
	}
}
