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

package inspect

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fsgmodding/modcheck/pkg/archive"
	"github.com/fsgmodding/modcheck/pkg/issue"
	"github.com/fsgmodding/modcheck/pkg/record"
)

func newRecord() *record.Record {
	rec := record.New("/mods/FS22_Test.zip", false)
	rec.CanNotUse = false
	return rec
}

func TestCountContentClean(t *testing.T) {
	rec := newRecord()
	countContent(rec, []archive.Entry{
		{Name: "modDesc.xml", Size: 2048},
		{Name: "icon_mod.dds", Size: 4096},
		{Name: "models/plow.i3d", Size: 9000},
		{Name: "models/plow.i3d.shapes", Size: 60000},
		{Name: "models", IsDir: true},
	})

	assert.Equal(t, 0, rec.Issues.Len())
	assert.Equal(t, []string{"icon_mod.dds"}, rec.FileDetail.ImageDDS)
	assert.Equal(t, []string{"models/plow.i3d"}, rec.FileDetail.I3DFiles)
	assert.Empty(t, rec.FileDetail.TooBigFiles)
}

func TestCountContentOversize(t *testing.T) {
	tests := []struct {
		name  string
		entry archive.Entry
		want  issue.Code
	}{
		{"cache", archive.Entry{Name: "big.i3d.cache", Size: sizeCache + 1}, issue.OversizeI3D},
		{"i3d", archive.Entry{Name: "big.i3d", Size: sizeCache + 1}, issue.OversizeI3D},
		{"dds", archive.Entry{Name: "big.dds", Size: sizeDDS + 1}, issue.OversizeDDS},
		{"gdm", archive.Entry{Name: "big.gdm", Size: sizeGDM + 1}, issue.OversizeGDM},
		{"shapes", archive.Entry{Name: "big.shapes", Size: sizeShapes + 1}, issue.OversizeSHAPES},
		{"xml", archive.Entry{Name: "big.xml", Size: sizeXML + 1}, issue.OversizeXML},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := newRecord()
			countContent(rec, []archive.Entry{tc.entry})

			assert.True(t, rec.Issues.Has(tc.want))
			assert.Equal(t, []string{tc.entry.Name}, rec.FileDetail.TooBigFiles)
		})
	}
}

func TestCountContentAtLimitNotFlagged(t *testing.T) {
	rec := newRecord()
	countContent(rec, []archive.Entry{
		{Name: "exact.dds", Size: sizeDDS},
		{Name: "exact.xml", Size: sizeXML},
	})

	assert.Equal(t, 0, rec.Issues.Len())
	assert.Empty(t, rec.FileDetail.TooBigFiles)
}

func TestCountContentQuantities(t *testing.T) {
	t.Run("pdf", func(t *testing.T) {
		rec := newRecord()
		countContent(rec, []archive.Entry{
			{Name: "manual.pdf", Size: 10},
			{Name: "manual_de.pdf", Size: 10},
		})
		assert.True(t, rec.Issues.Has(issue.QuantityPDF))
	})

	t.Run("txt", func(t *testing.T) {
		rec := newRecord()
		countContent(rec, []archive.Entry{
			{Name: "a.txt", Size: 1},
			{Name: "b.txt", Size: 1},
			{Name: "c.txt", Size: 1},
		})
		assert.True(t, rec.Issues.Has(issue.QuantityTXT))
	})

	t.Run("grle", func(t *testing.T) {
		rec := newRecord()
		entries := make([]archive.Entry, 0, maxGRLE+1)
		for i := 0; i <= maxGRLE; i++ {
			entries = append(entries, archive.Entry{Name: fmt.Sprintf("layer%d.grle", i), Size: 1})
		}
		countContent(rec, entries)
		assert.True(t, rec.Issues.Has(issue.QuantityGRLE))
	})

	t.Run("png", func(t *testing.T) {
		rec := newRecord()
		entries := make([]archive.Entry, 0, maxPNG+1)
		for i := 0; i <= maxPNG; i++ {
			entries = append(entries, archive.Entry{Name: fmt.Sprintf("tex%d_weight.png", i), Size: 1})
		}
		countContent(rec, entries)

		// Weight masks stay off the texture lists but still count
		// against the allowance.
		assert.True(t, rec.Issues.Has(issue.QuantityPNG))
		assert.Empty(t, rec.FileDetail.PNGTexture)
	})

	t.Run("under the limits", func(t *testing.T) {
		rec := newRecord()
		countContent(rec, []archive.Entry{
			{Name: "manual.pdf", Size: 10},
			{Name: "a.txt", Size: 1},
			{Name: "b.txt", Size: 1},
		})
		assert.Equal(t, 0, rec.Issues.Len())
	})
}

func TestCountContentSpaces(t *testing.T) {
	rec := newRecord()
	countContent(rec, []archive.Entry{
		{Name: "textures/old barn.dds", Size: 100},
		{Name: "sounds/engine start.ogg", Size: 100},
	})

	assert.True(t, rec.Issues.Has(issue.FileSpaces))
	assert.Equal(t,
		[]string{"textures/old barn.dds", "sounds/engine start.ogg"},
		rec.FileDetail.SpaceFiles)
}

func TestCountContentForeign(t *testing.T) {
	rec := newRecord()
	countContent(rec, []archive.Entry{
		{Name: "config.json", Size: 100},
		{Name: "vehicles.dat", Size: 100},
	})

	assert.True(t, rec.Issues.Has(issue.QuantityExtra))
	assert.True(t, rec.Issues.Has(issue.LikelyPiracy))
	assert.Equal(t, []string{"config.json", "vehicles.dat"}, rec.FileDetail.ExtraFiles)
}

func TestCountContentPNGTextures(t *testing.T) {
	rec := newRecord()
	countContent(rec, []archive.Entry{
		{Name: "tex/field_weight.png", Size: 100},
		{Name: "tex/logo.png", Size: 100},
	})

	assert.Equal(t, []string{"tex/logo.png"}, rec.FileDetail.ImageNonDDS)
	assert.Equal(t, []string{"tex/logo.png"}, rec.FileDetail.PNGTexture)
}

func TestCountContentScripts(t *testing.T) {
	rec := newRecord()
	countContent(rec, []archive.Entry{
		{Name: "scripts/main.lua", Size: 100},
		{Name: "scripts/util.lua", Size: 100},
	})

	assert.Equal(t, 2, rec.ModDesc.ScriptFiles)
}
