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
	"sort"

	"golang.org/x/text/language"
)

// L10N carries the translated title and description of a package, keyed
// by locale code as found in modDesc.xml.
type L10N struct {
	Title       map[string]string `json:"title"`
	Description map[string]string `json:"description"`
}

// TitleIn returns the title best matching the preferred languages. The
// search falls back to English, then to the first locale in sorted
// order, then to the "--" placeholder.
func (l L10N) TitleIn(prefs ...language.Tag) string {
	return pickLocale(l.Title, prefs)
}

// DescriptionIn is TitleIn for the description.
func (l L10N) DescriptionIn(prefs ...language.Tag) string {
	return pickLocale(l.Description, prefs)
}

func pickLocale(entries map[string]string, prefs []language.Tag) string {
	if len(entries) == 0 {
		return "--"
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(prefs) > 0 {
		// English leads the supported list so the matcher's own
		// fallback lands there.
		var tags []language.Tag
		var names []string
		if _, ok := entries["en"]; ok {
			tags = append(tags, language.English)
			names = append(names, "en")
		}
		for _, k := range keys {
			if k == "en" {
				continue
			}
			if t, err := language.Parse(k); err == nil {
				tags = append(tags, t)
				names = append(names, k)
			}
		}
		if len(tags) > 0 {
			if _, i, conf := language.NewMatcher(tags).Match(prefs...); conf > language.No {
				return entries[names[i]]
			}
		}
	}

	if v, ok := entries["en"]; ok {
		return v
	}
	return entries[keys[0]]
}
