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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceSorting(t *testing.T) {
	root := parseXML(t, `<placeable type="sheds">
		<storeData>
			<name>Machine Shed</name>
			<category>sheds</category>
			<price>55000</price>
			<incomePerHour>120</incomePerHour>
			<functions>
				<function>$l10n_function_shed</function>
				<function>Keeps the rain off</function>
			</functions>
		</storeData>
		<colorable>
			<color name="red" />
			<color name="green" />
		</colorable>
	</placeable>`)

	p := newPlace()
	placeSorting(root, p)

	category, name, typeName := "sheds", "Machine Shed", "sheds"
	assert.Equal(t, PlaceSorting{
		Category:      &category,
		Functions:     []string{"$l10n_function_shed", "Keeps the rain off"},
		HasColor:      true,
		IncomePerHour: 120,
		Name:          &name,
		Price:         55000,
		TypeName:      &typeName,
	}, p.Sorting)
}

func TestPlaceSingleColorIsNotAChoice(t *testing.T) {
	root := parseXML(t, `<placeable><colorable><color name="red" /></colorable></placeable>`)

	p := newPlace()
	placeSorting(root, p)

	assert.False(t, p.Sorting.HasColor)
}

func TestPlaceObjectStorage(t *testing.T) {
	p := newPlace()
	placeStorage(parseXML(t, `<placeable><objectStorage capacity="64" /></placeable>`), p)

	require.NotNil(t, p.Storage.Objects)
	assert.Equal(t, 64, *p.Storage.Objects)
	assert.False(t, p.Storage.SiloExists)

	// Unstated capacity falls back to the game default.
	p = newPlace()
	placeStorage(parseXML(t, `<placeable><objectStorage /></placeable>`), p)

	require.NotNil(t, p.Storage.Objects)
	assert.Equal(t, 250, *p.Storage.Objects)
}

func TestPlaceSiloStorage(t *testing.T) {
	root := parseXML(t, `<placeable type="siloExtension">
		<silo>
			<storages>
				<storage capacity="100000" fillTypeCategories="BULK FARMSILO" />
				<storage capacity="50000" fillTypes="WHEAT barley" />
				<storage capacity="junk" fillTypes="sorghum" />
			</storages>
		</silo>
	</placeable>`)

	p := newPlace()
	placeStorage(root, p)

	assert.True(t, p.Storage.SiloExists)
	assert.Equal(t, 150000, p.Storage.SiloCapacity)
	assert.Equal(t, []string{"bulk", "farmsilo"}, p.Storage.SiloFillCats)
	assert.Equal(t, []string{"barley", "sorghum", "wheat"}, p.Storage.SiloFillTypes)
	assert.Nil(t, p.Storage.Objects)
}

func TestPlaceAnimals(t *testing.T) {
	root := parseXML(t, `<placeable>
		<beehive litersHoneyPerDay="150" actionRadius="25" />
		<husbandry>
			<animals maxNumAnimals="45" type="COW" />
		</husbandry>
	</placeable>`)

	p := newPlace()
	placeAnimals(root, p)

	cow := "COW"
	assert.Equal(t, PlaceAnimals{
		BeehiveExists:    true,
		BeehivePerDay:    150,
		BeehiveRadius:    25,
		HusbandryAnimals: 45,
		HusbandryExists:  true,
		HusbandryType:    &cow,
	}, p.Animals)
}

func TestPlaceProductions(t *testing.T) {
	root := parseXML(t, `<placeable>
		<productions>
			<production name="Sawmill" params="wood" cyclesPerActiveMinute="2" costsPerActiveMonth="48">
				<inputs>
					<input fillType="WOOD" amount="5" />
					<input fillType="DIESEL" amount="1" mix="boost" boostfactor="0.5" />
					<input fillType="BARLEY" amount="2" mix="1" />
					<input fillType="WHEAT" amount="2" mix="1" />
					<input fillType="OAT" amount="2" />
					<input amount="3" />
					<input fillType="SOYBEAN" />
				</inputs>
				<outputs>
					<output fillType="PLANKS" amount="2" />
					<output fillType="WOODCHIPS" amount="0.5" />
				</outputs>
			</production>
			<production />
		</productions>
	</placeable>`)

	p := newPlace()
	for _, node := range root.All("production") {
		p.Productions = append(p.Productions, parseProduction(node))
	}
	require.Len(t, p.Productions, 2)

	sawmill := p.Productions[0]
	assert.Equal(t, "Sawmill", sawmill.Name)
	assert.Equal(t, "wood", sawmill.Params)
	assert.Equal(t, 120.0, sawmill.CyclesPerHour)
	assert.Equal(t, 2.0, sawmill.CostPerHour)
	assert.Equal(t, []Ingredient{
		{Amount: 2, FillType: "planks"},
		{Amount: 0.5, FillType: "woodchips"},
	}, sawmill.Output)
	assert.Equal(t, [][]Ingredient{
		{{Amount: 5, FillType: "wood"}},
		{{Amount: 2, FillType: "oat"}},
		{{Amount: 2, FillType: "barley"}, {Amount: 2, FillType: "wheat"}},
	}, sawmill.Recipe)
	assert.Equal(t, []Boost{{Amount: 1, BoostFactor: 0.5, FillType: "diesel"}}, sawmill.Boosts)

	empty := p.Productions[1]
	assert.Equal(t, "--", empty.Name)
	assert.Equal(t, 1.0, empty.CostPerHour)
	assert.Equal(t, 1.0, empty.CyclesPerHour)
	assert.Empty(t, empty.Output)
	assert.Empty(t, empty.Recipe)
	assert.Empty(t, empty.Boosts)
}

func TestPlaceProductionRateUnits(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want float64
	}{
		{"hourly", `<production costsPerActiveHour="7" />`, 7},
		{"minutes scale up", `<production costsPerActiveMinute="3" />`, 180},
		{"months scale down", `<production costsPerActiveMonth="50" />`, 2},
		{"hour wins over minute", `<production costsPerActiveHour="7" costsPerActiveMinute="3" />`, 7},
		{"unparseable keeps default", `<production costsPerActiveHour="lots" />`, 1},
		{"unstated keeps default", `<production />`, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseProduction(parseXML(t, tc.xml))
			assert.Equal(t, tc.want, got.CostPerHour)
		})
	}
}
