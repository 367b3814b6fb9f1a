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
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestL10NLookup(t *testing.T) {
	l := L10N{
		Title: map[string]string{
			"en": "Lime Spreader",
			"de": "Kalkstreuer",
			"fr": "Epandeur de chaux",
		},
	}

	tests := []struct {
		name  string
		prefs []language.Tag
		want  string
	}{
		{"exact match", []language.Tag{language.German}, "Kalkstreuer"},
		{"regional variant", []language.Tag{language.CanadianFrench}, "Epandeur de chaux"},
		{"unsupported falls back to english", []language.Tag{language.Japanese}, "Lime Spreader"},
		{"no preference", nil, "Lime Spreader"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, l.TitleIn(tc.prefs...))
		})
	}
}

func TestL10NLookupFallbacks(t *testing.T) {
	empty := L10N{}
	assert.Equal(t, "--", empty.TitleIn(language.English))
	assert.Equal(t, "--", empty.DescriptionIn())

	noEnglish := L10N{Description: map[string]string{"pl": "Opis"}}
	assert.Equal(t, "Opis", noEnglish.DescriptionIn(language.English))
	assert.Equal(t, "Opis", noEnglish.DescriptionIn())
}
