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

package issue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAddIsIdempotent(t *testing.T) {
	s := NewSet()
	s.Add(MaliciousCode)
	s.Add(MaliciousCode)
	s.Add(MaliciousCode)

	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has(MaliciousCode))
	assert.False(t, s.Has(GarbageFile))
}

func TestSetCodesSorted(t *testing.T) {
	s := NewSet()
	s.Add(QuantityTXT, GarbageFile, NoModIcon, DescMissing)

	codes := s.Codes()
	require.Len(t, codes, 4)
	assert.Equal(t, []Code{GarbageFile, NoModIcon, DescMissing, QuantityTXT}, codes)
}

func TestSetTierQueries(t *testing.T) {
	s := NewSet()
	assert.False(t, s.AnyBroken())
	assert.False(t, s.AnyAdvisory())
	assert.False(t, s.AnyNotMod())

	s.Add(NoModIcon)
	assert.False(t, s.AnyBroken())
	assert.True(t, s.AnyAdvisory())
	assert.False(t, s.AnyNotMod())

	s.Add(GarbageFile)
	assert.True(t, s.AnyBroken())
	assert.True(t, s.AnyNotMod())
}

func TestSetJSON(t *testing.T) {
	s := NewSet()
	s.Add(NameInvalid, GarbageFile)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["FILE_ERROR_GARBAGE_FILE","FILE_ERROR_NAME_INVALID"]`, string(data))

	var back Set
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, 2, back.Len())
	assert.True(t, back.Has(NameInvalid))
	assert.True(t, back.Has(GarbageFile))
}

func TestEmptySetJSON(t *testing.T) {
	data, err := json.Marshal(NewSet())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
