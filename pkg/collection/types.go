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
	"github.com/fsgmodding/modcheck/pkg/header"
	"github.com/fsgmodding/modcheck/pkg/record"
)

// Report is the result of scanning one collection folder. It carries a
// record for every package found directly under the root, sorted by
// short name so two scans of the same folder diff cleanly.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Name is the collection name, by default the root folder's base name.
	Name string `json:"name" yaml:"name"`

	// Root is the scanned directory.
	Root string `json:"root" yaml:"root"`

	// RunID uniquely identifies one scan run.
	RunID string `json:"runId" yaml:"runId"`

	// Mods contains one record per package in the collection.
	Mods []*record.Record `json:"mods" yaml:"mods"`

	// BrokenCount is the number of packages that cannot be used as mods.
	BrokenCount int `json:"brokenCount" yaml:"brokenCount"`

	// IssueCount is the total number of issues across all packages.
	IssueCount int `json:"issueCount" yaml:"issueCount"`

	// Duration is the wall-clock scan time, rounded to milliseconds.
	Duration string `json:"duration" yaml:"duration"`
}

// NewReport creates an empty Report for the named collection.
func NewReport(name, root string) *Report {
	return &Report{
		Name: name,
		Root: root,
		Mods: make([]*record.Record, 0),
	}
}
