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
	"sort"
)

// Set accumulates codes found during one inspection run. Accumulation is
// monotonic: codes are only ever added, never removed, and duplicates
// collapse. The zero value is not usable; construct with NewSet.
type Set map[Code]struct{}

// NewSet returns an empty, ready to use set.
func NewSet() Set {
	return Set{}
}

// Add records a code. Adding a code already present is a no-op.
func (s Set) Add(codes ...Code) {
	for _, c := range codes {
		s[c] = struct{}{}
	}
}

// Has reports whether the code has been recorded.
func (s Set) Has(c Code) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of distinct codes recorded.
func (s Set) Len() int {
	return len(s)
}

// Codes returns the recorded codes ordered by wire token so repeated runs
// over identical input serialize identically.
func (s Set) Codes() []Code {
	out := make([]Code, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sortCodes(out)
	return out
}

// AnyBroken reports whether any recorded code is in the broken tier.
func (s Set) AnyBroken() bool {
	for c := range s {
		if c.Broken() {
			return true
		}
	}
	return false
}

// AnyAdvisory reports whether any recorded code is in the advisory tier.
func (s Set) AnyAdvisory() bool {
	for c := range s {
		if c.Advisory() {
			return true
		}
	}
	return false
}

// AnyNotMod reports whether any recorded code means this is not a mod.
func (s Set) AnyNotMod() bool {
	for c := range s {
		if c.NotMod() {
			return true
		}
	}
	return false
}

// MarshalJSON serializes the set as a sorted array of wire tokens.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Codes())
}

// UnmarshalJSON restores a set from an array of wire tokens.
func (s *Set) UnmarshalJSON(data []byte) error {
	var codes []Code
	if err := json.Unmarshal(data, &codes); err != nil {
		return err
	}
	out := NewSet()
	out.Add(codes...)
	*s = out
	return nil
}

func sortCodes(codes []Code) {
	sort.Slice(codes, func(i, j int) bool {
		return codes[i].Token() < codes[j].Token()
	})
}
