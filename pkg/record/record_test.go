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

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsgmodding/modcheck/pkg/issue"
)

func TestNew(t *testing.T) {
	r := New("/mods/FS22_Test.zip", false)

	assert.True(t, r.CanNotUse)
	assert.False(t, r.FileDetail.IsFolder)
	assert.Equal(t, "FS22_Test", r.FileDetail.ShortName)
	assert.Equal(t, "/mods/FS22_Test.zip", r.FileDetail.FullPath)
	assert.Equal(t, "--", r.ModDesc.Author)
	assert.Equal(t, "--", r.ModDesc.Version)
	assert.Equal(t, map[string]string{"en": "--"}, r.L10N.Title)
	assert.Equal(t, map[string]string{"en": "--"}, r.L10N.Description)

	assert.Len(t, r.UUID, 32)
	assert.Equal(t, r.UUID, New("/mods/FS22_Test.zip", false).UUID)
	assert.NotEqual(t, r.UUID, New("/mods/FS22_Other.zip", false).UUID)
}

func TestShortName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/mods/FS22_Test.zip", "FS22_Test"},
		{"/mods/FS22_Folder", "FS22_Folder"},
		{"/mods/archive.tar.gz", "archive.tar"},
		{"/mods/.hidden", ".hidden"},
		{"relative.zip", "relative"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, shortName(tc.path))
		})
	}
}

func TestNewRecordWire(t *testing.T) {
	r := New("/mods/FS22_Test.zip", false)

	out, err := json.Marshal(r)
	require.NoError(t, err)

	want := fmt.Sprintf(`{
		"badgeArray": [],
		"canNotUse": true,
		"currentCollection": "",
		"detailIconLoaded": false,
		"fileDetail": {
			"copyName": null,
			"extraFiles": [],
			"fileDate": "",
			"fileSize": 0,
			"fullPath": "/mods/FS22_Test.zip",
			"i3dFiles": [],
			"imageDDS": [],
			"imageNonDDS": [],
			"isFolder": false,
			"isSaveGame": false,
			"isModPack": false,
			"pngTexture": [],
			"shortName": "FS22_Test",
			"spaceFiles": [],
			"tooBigFiles": [],
			"zipFiles": []
		},
		"issues": [],
		"includeDetail": null,
		"includeSaveGame": null,
		"l10n": {"title": {"en": "--"}, "description": {"en": "--"}},
		"md5Sum": null,
		"modDesc": {
			"actions": {},
			"binds": {},
			"author": "--",
			"scriptFiles": 0,
			"storeItems": 0,
			"cropInfo": null,
			"cropWeather": null,
			"depend": [],
			"descVersion": 0,
			"iconFileName": null,
			"iconImage": null,
			"mapConfigFile": null,
			"mapCustomEnv": false,
			"mapCustomCrop": false,
			"mapCustomGrow": false,
			"mapIsSouth": false,
			"mapImage": null,
			"multiPlayer": false,
			"version": "--"
		},
		"uuid": %q
	}`, r.UUID)

	assert.JSONEq(t, want, string(out))
}

func TestAddIssueAndFatal(t *testing.T) {
	r := New("/mods/FS22_Test.zip", false)
	r.CanNotUse = false

	r.AddIssue(issue.FileSpaces)
	assert.False(t, r.CanNotUse)
	assert.True(t, r.Issues.Has(issue.FileSpaces))

	r.AddFatal(issue.UnreadableZip)
	assert.True(t, r.CanNotUse)
	assert.True(t, r.Issues.Has(issue.UnreadableZip))
}

func TestUpdateBadges(t *testing.T) {
	r := New("/mods/FS22_Test", true)
	r.ModDesc.ScriptFiles = 3
	r.ModDesc.MultiPlayer = true

	r.UpdateBadges()

	out, err := json.Marshal(r.BadgeArray)
	require.NoError(t, err)
	assert.JSONEq(t, `["folder","noMP","pconly"]`, string(out))

	r.FileDetail.IsSaveGame = true
	r.UpdateBadges()

	out, err = json.Marshal(r.BadgeArray)
	require.NoError(t, err)
	assert.JSONEq(t, `["pconly","savegame"]`, string(out))
}

func TestRecordString(t *testing.T) {
	r := New("/mods/FS22_Test.zip", false)
	assert.Contains(t, r.String(), `"uuid"`)
}
