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

package collection

import (
	"fmt"
	"sort"

	"github.com/fsgmodding/modcheck/pkg/header"
	"github.com/fsgmodding/modcheck/pkg/issue"
	"github.com/fsgmodding/modcheck/pkg/record"
	"github.com/fsgmodding/modcheck/pkg/serializer"
	"github.com/fsgmodding/modcheck/pkg/version"
)

// DiffReport describes how one collection changed relative to another.
type DiffReport struct {
	header.Header `json:",inline" yaml:",inline"`

	// OldName and NewName are the collection names of the two sides.
	OldName string `json:"oldName" yaml:"oldName"`
	NewName string `json:"newName" yaml:"newName"`

	// Added, Removed, and Updated list the mods that differ between the
	// two reports, sorted by short name.
	Added   []DiffEntry `json:"added" yaml:"added"`
	Removed []DiffEntry `json:"removed" yaml:"removed"`
	Updated []DiffEntry `json:"updated" yaml:"updated"`

	// Unchanged is the number of mods present in both reports with the
	// same version and the same issue set.
	Unchanged int `json:"unchanged" yaml:"unchanged"`
}

// DiffEntry is one mod's change between two collection reports.
type DiffEntry struct {
	ShortName  string       `json:"shortName" yaml:"shortName"`
	OldVersion string       `json:"oldVersion,omitempty" yaml:"oldVersion,omitempty"`
	NewVersion string       `json:"newVersion,omitempty" yaml:"newVersion,omitempty"`
	Issues     []issue.Code `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Diff compares two collection reports and returns what changed from
// old to new. Mods are matched by short name. A mod counts as updated
// when its version or its issue set changed; anything else present in
// both reports is unchanged. Either report may be nil, which reads as
// an empty collection.
func Diff(old, new *Report) *DiffReport {
	dr := &DiffReport{
		Added:   make([]DiffEntry, 0),
		Removed: make([]DiffEntry, 0),
		Updated: make([]DiffEntry, 0),
	}
	dr.Init(header.KindCollectionDiff, "")
	if old != nil {
		dr.OldName = old.Name
	}
	if new != nil {
		dr.NewName = new.Name
	}

	oldMods := modIndex(old)
	newMods := modIndex(new)

	for name, rec := range newMods {
		prev, ok := oldMods[name]
		if !ok {
			dr.Added = append(dr.Added, DiffEntry{
				ShortName:  name,
				NewVersion: rec.ModDesc.Version,
				Issues:     rec.Issues.Codes(),
			})
			continue
		}
		if sameVersion(prev.ModDesc.Version, rec.ModDesc.Version) && sameIssues(prev.Issues, rec.Issues) {
			dr.Unchanged++
			continue
		}
		dr.Updated = append(dr.Updated, DiffEntry{
			ShortName:  name,
			OldVersion: prev.ModDesc.Version,
			NewVersion: rec.ModDesc.Version,
			Issues:     rec.Issues.Codes(),
		})
	}

	for name, rec := range oldMods {
		if _, ok := newMods[name]; ok {
			continue
		}
		dr.Removed = append(dr.Removed, DiffEntry{
			ShortName:  name,
			OldVersion: rec.ModDesc.Version,
		})
	}

	sortEntries(dr.Added)
	sortEntries(dr.Removed)
	sortEntries(dr.Updated)

	return dr
}

// LoadReport reads a collection report from a local file or an http(s)
// URL and validates its envelope before returning it.
func LoadReport(path string) (*Report, error) {
	rep, err := serializer.FromFile[Report](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection report from %s: %w", path, err)
	}
	if rep.APIVersion != "" && rep.APIVersion != header.APIVersion {
		return nil, fmt.Errorf("report %s has apiVersion %q, expected %q", path, rep.APIVersion, header.APIVersion)
	}
	if rep.Kind != "" && rep.Kind != header.KindCollectionReport {
		return nil, fmt.Errorf("report %s has kind %q, expected %q", path, rep.Kind, header.KindCollectionReport)
	}
	return rep, nil
}

func modIndex(rep *Report) map[string]*record.Record {
	idx := make(map[string]*record.Record)
	if rep == nil {
		return idx
	}
	for _, rec := range rep.Mods {
		if rec == nil {
			continue
		}
		idx[rec.FileDetail.ShortName] = rec
	}
	return idx
}

// sameVersion compares two mod version strings, numerically when both
// parse and textually otherwise. The "--" placeholder and junk
// versions never parse, so they only ever equal themselves.
func sameVersion(a, b string) bool {
	va, errA := version.ParseVersion(a)
	vb, errB := version.ParseVersion(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return va.Equals(vb)
}

func sameIssues(a, b issue.Set) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, code := range a.Codes() {
		if !b.Has(code) {
			return false
		}
	}
	return true
}

func sortEntries(entries []DiffEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ShortName < entries[j].ShortName
	})
}
