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

package moddesc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsgmodding/modcheck/pkg/archive"
	"github.com/fsgmodding/modcheck/pkg/issue"
	"github.com/fsgmodding/modcheck/pkg/record"
	"github.com/fsgmodding/modcheck/pkg/xmltree"
)

func newRecord(t *testing.T) *record.Record {
	t.Helper()
	rec := record.New("/mods/FS22_Test.zip", false)
	rec.CanNotUse = false
	return rec
}

func parseDesc(t *testing.T, raw string) *xmltree.Node {
	t.Helper()
	root, err := xmltree.ParseBytes([]byte(raw))
	require.NoError(t, err)
	return root
}

func openFolder(t *testing.T, files map[string]string) archive.Handle {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		target := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
		require.NoError(t, os.WriteFile(target, []byte(body), 0o644))
	}
	src, err := archive.Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })
	return src
}

func TestLoadMissing(t *testing.T) {
	src := openFolder(t, map[string]string{"readme.txt": "not a mod"})
	rec := newRecord(t)

	root, ok := Load(rec, src)

	assert.Nil(t, root)
	assert.False(t, ok)
	assert.True(t, rec.CanNotUse)
	assert.Equal(t, []issue.Code{issue.DescMissing}, rec.Issues.Codes())
}

func TestLoadDamagedRecovers(t *testing.T) {
	src := openFolder(t, map[string]string{
		Name: "PK junk a download manager prepended\n" +
			`<modDesc descVersion="60"><author>someone</author></modDesc>`,
	})
	rec := newRecord(t)

	root, ok := Load(rec, src)

	require.True(t, ok)
	require.NotNil(t, root)
	assert.Equal(t, "modDesc", root.Name)
	assert.False(t, rec.CanNotUse)
	assert.Equal(t, []issue.Code{issue.DescDamaged}, rec.Issues.Codes())
}

func TestLoadUnrecoverable(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no markup at all", "this file holds no xml whatsoever"},
		{"broken from the first byte", "<modDesc><author>unclosed"},
		{"recovery attempt also fails", "junk before <modDesc><author>unclosed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := openFolder(t, map[string]string{Name: tc.body})
			rec := newRecord(t)

			root, ok := Load(rec, src)

			assert.Nil(t, root)
			assert.False(t, ok)
			assert.True(t, rec.CanNotUse)
			assert.Equal(t, []issue.Code{issue.DescParseError}, rec.Issues.Codes())
		})
	}
}

func TestExtractFull(t *testing.T) {
	root := parseDesc(t, `
	<modDesc descVersion="79">
		<author>FSG Modding</author>
		<version>1.2.0.0</version>
		<multiplayer supported="true"/>
		<iconFilename>icon_mod.png</iconFilename>
		<title>
			<en>Test Mod</en>
			<de>Testmodifikation</de>
		</title>
		<description>
			<en>A mod that does things.</en>
			<de></de>
		</description>
		<map configFilename="xml/map.xml"/>
		<dependencies>
			<dependency>FS22_First</dependency>
			<dependency>FS22_Second</dependency>
			<dependency>FS22_First</dependency>
			<dependency></dependency>
		</dependencies>
		<storeItems>
			<storeItem xmlFilename="xml/one.xml"/>
			<storeItem xmlFilename="xml/two.xml"/>
		</storeItems>
		<actions>
			<action name="DoThing" category="VEHICLE"/>
			<action name="OtherThing"/>
			<action category="IGNORED"/>
		</actions>
		<actionBindings>
			<actionBinding action="DoThing">
				<binding device="KB_MOUSE_DEFAULT" input="KEY_y"/>
				<binding device="KB_MOUSE_DEFAULT" input="KEY_z"/>
				<binding device="GAMEPAD" input="BUTTON_3"/>
				<binding device="KB_MOUSE_DEFAULT"/>
			</actionBinding>
			<actionBinding action="PadOnly">
				<binding device="GAMEPAD" input="BUTTON_4"/>
			</actionBinding>
			<actionBinding>
				<binding device="KB_MOUSE_DEFAULT" input="KEY_u"/>
			</actionBinding>
		</actionBindings>
	</modDesc>`)

	rec := newRecord(t)
	rec.FileDetail.ImageDDS = []string{"icon_mod.dds"}

	Extract(rec, root)

	desc := rec.ModDesc
	assert.Equal(t, 79, desc.DescVersion)
	assert.Equal(t, "1.2.0.0", desc.Version)
	assert.Equal(t, "FSG Modding", desc.Author)
	assert.True(t, desc.MultiPlayer)
	assert.Equal(t, 2, desc.StoreItems)
	require.NotNil(t, desc.MapConfigFile)
	assert.Equal(t, "xml/map.xml", *desc.MapConfigFile)
	assert.Equal(t, []string{"FS22_First", "FS22_Second", "FS22_First"}, desc.Depend)
	require.NotNil(t, desc.IconFileName)
	assert.Equal(t, "icon_mod.dds", *desc.IconFileName)
	assert.Equal(t, map[string]string{"DoThing": "VEHICLE", "OtherThing": "ALL"}, desc.Actions)
	assert.Equal(t, map[string][]string{
		"DoThing": {"KEY_y", "KEY_z"},
		"PadOnly": {},
	}, desc.Binds)
	assert.Equal(t, map[string]string{"en": "Test Mod", "de": "Testmodifikation"}, rec.L10N.Title)
	assert.Equal(t, map[string]string{"en": "A mod that does things.", "de": ""}, rec.L10N.Description)
	assert.Equal(t, 0, rec.Issues.Len())
}

func TestExtractDefaults(t *testing.T) {
	root := parseDesc(t, `<modDesc></modDesc>`)
	rec := newRecord(t)

	Extract(rec, root)

	assert.Equal(t, 0, rec.ModDesc.DescVersion)
	assert.Equal(t, "--", rec.ModDesc.Version)
	assert.Equal(t, "--", rec.ModDesc.Author)
	assert.False(t, rec.ModDesc.MultiPlayer)
	assert.Equal(t, 0, rec.ModDesc.StoreItems)
	assert.Nil(t, rec.ModDesc.MapConfigFile)
	assert.Empty(t, rec.ModDesc.Depend)
	assert.Nil(t, rec.ModDesc.IconFileName)
	assert.Equal(t, map[string]string{"en": "--"}, rec.L10N.Title)
	assert.Equal(t, map[string]string{"en": "--"}, rec.L10N.Description)
	assert.False(t, rec.CanNotUse)
	assert.Equal(t, []issue.Code{
		issue.NoModIcon,
		issue.NoModVersion,
		issue.DescVersionOldOrMissing,
		issue.MissingL10N,
	}, rec.Issues.Codes())
}

func TestExtractVersionVariants(t *testing.T) {
	t.Run("empty element means first release", func(t *testing.T) {
		root := parseDesc(t, `<modDesc descVersion="60"><version></version></modDesc>`)
		rec := newRecord(t)

		Extract(rec, root)

		assert.Equal(t, "1.0.0.0", rec.ModDesc.Version)
		assert.False(t, rec.Issues.Has(issue.NoModVersion))
	})

	t.Run("unparsable descVersion flags old or missing", func(t *testing.T) {
		root := parseDesc(t, `<modDesc descVersion="potato"><version>1.0.0.0</version></modDesc>`)
		rec := newRecord(t)

		Extract(rec, root)

		assert.Equal(t, 0, rec.ModDesc.DescVersion)
		assert.True(t, rec.Issues.Has(issue.DescVersionOldOrMissing))
	})
}

func TestExtractIcon(t *testing.T) {
	cases := []struct {
		name string
		icon string
		dds  []string
		want string
	}{
		{"png rewritten to dds", "icon_mod.png", []string{"icon_mod.dds"}, "icon_mod.dds"},
		{"rewrite drops trailing junk", "icon_mod.png.bak", []string{"icon_mod.dds"}, "icon_mod.dds"},
		{"dds spelled directly", "icon_mod.dds", []string{"icon_mod.dds"}, "icon_mod.dds"},
		{"not shipped", "icon_other.png", []string{"icon_mod.dds"}, ""},
		{"empty element", "", []string{"icon_mod.dds"}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := parseDesc(t, `
			<modDesc descVersion="60">
				<version>1.0.0.0</version>
				<iconFilename>`+tc.icon+`</iconFilename>
				<title><en>x</en></title>
				<description><en>x</en></description>
			</modDesc>`)
			rec := newRecord(t)
			rec.FileDetail.ImageDDS = tc.dds

			Extract(rec, root)

			if tc.want == "" {
				assert.Nil(t, rec.ModDesc.IconFileName)
				assert.True(t, rec.Issues.Has(issue.NoModIcon))
				return
			}
			require.NotNil(t, rec.ModDesc.IconFileName)
			assert.Equal(t, tc.want, *rec.ModDesc.IconFileName)
			assert.False(t, rec.Issues.Has(issue.NoModIcon))
		})
	}
}

func TestExtractTitleBareText(t *testing.T) {
	root := parseDesc(t, `
	<modDesc descVersion="60">
		<title>My Untranslated Mod</title>
	</modDesc>`)
	rec := newRecord(t)

	Extract(rec, root)

	assert.Equal(t, map[string]string{"en": "My Untranslated Mod"}, rec.L10N.Title)
	assert.Equal(t, map[string]string{"en": "--"}, rec.L10N.Description)
	assert.True(t, rec.Issues.Has(issue.MissingL10N))
}

func TestExtractProductID(t *testing.T) {
	root := parseDesc(t, `
	<modDesc descVersion="60">
		<productId>store-sku-12345</productId>
	</modDesc>`)
	rec := newRecord(t)

	Extract(rec, root)

	assert.True(t, rec.Issues.Has(issue.LikelyPiracy))
}
