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

package badge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsgmodding/modcheck/pkg/issue"
)

func setOf(codes ...issue.Code) issue.Set {
	s := issue.NewSet()
	s.Add(codes...)
	return s
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		codes []issue.Code
		facts Facts
		want  []string
	}{
		{
			name:  "clean zipped multiplayer mod",
			facts: Facts{MultiPlayer: true},
			want:  []string{},
		},
		{
			name:  "clean zipped singleplayer mod",
			facts: Facts{MultiPlayer: false},
			want:  []string{"noMP"},
		},
		{
			name:  "clean folder mod",
			facts: Facts{Folder: true, MultiPlayer: true},
			want:  []string{"folder", "noMP"},
		},
		{
			name:  "scripted mod",
			facts: Facts{MultiPlayer: true, ScriptFiles: 3},
			want:  []string{"pconly"},
		},
		{
			name:  "garbage file",
			codes: []issue.Code{issue.GarbageFile, issue.NameInvalid},
			want:  []string{"broken", "notmod"},
		},
		{
			name:  "advisory only",
			codes: []issue.Code{issue.NoModIcon},
			facts: Facts{MultiPlayer: true},
			want:  []string{"problem"},
		},
		{
			name:  "malicious script",
			codes: []issue.Code{issue.MaliciousCode},
			facts: Facts{MultiPlayer: true, ScriptFiles: 1},
			want:  []string{"malware", "pconly", "problem"},
		},
		{
			name:  "save game suppresses broken and problem",
			codes: []issue.Code{issue.LikelySaveGame, issue.NoModIcon},
			facts: Facts{SaveGame: true},
			want:  []string{"notmod", "savegame"},
		},
		{
			name:  "broken suppresses noMP",
			codes: []issue.Code{issue.DescParseError},
			facts: Facts{Folder: true},
			want:  []string{"broken", "folder"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(setOf(tt.codes...), tt.facts)
			assert.Equal(t, tt.want, got.Names())
		})
	}
}

func TestNamesSorted(t *testing.T) {
	all := Badges{
		Broken: true, Folder: true, Malware: true, NoMP: true,
		NotMod: true, PCOnly: true, Problem: true, SaveGame: true,
	}
	names := all.Names()
	require.Len(t, names, 8)
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}

func TestBadgesJSONRoundTrip(t *testing.T) {
	b := Badges{Broken: true, NotMod: true}

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `["broken","notmod"]`, string(data))

	var back Badges
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, b, back)
}

func TestBadgesJSONUnknownName(t *testing.T) {
	var b Badges
	err := json.Unmarshal([]byte(`["sparkly"]`), &b)
	assert.Error(t, err)
}
