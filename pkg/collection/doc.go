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

// Package collection scans whole mod folders and compares the results.
//
// # Overview
//
// A collection is a folder of mod packages the game loads together. The
// Scanner inspects every package directly under the collection root in
// parallel and assembles the per-package records into a single Report.
// Diff compares two saved reports and describes what was added, removed,
// or updated between them.
//
// # Usage
//
// Scan a mod folder:
//
//	ins := inspect.New(inspect.WithCollection("My Mods"))
//	s := collection.NewScanner(
//	    collection.WithInspector(ins),
//	    collection.WithName("My Mods"),
//	)
//
//	rep, err := s.Scan(ctx, "/home/player/mods")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Compare two saved reports:
//
//	old, err := collection.LoadReport("before.json")
//	...
//	cur, err := collection.LoadReport("after.json")
//	...
//	diff := collection.Diff(old, cur)
//
// # Report Structure
//
// Reports carry a header and one record per package:
//
//	apiVersion: modcheck.fsgmodding.io/v1
//	kind: CollectionReport
//	metadata:
//	  timestamp: 2025-06-01T10:30:00Z
//	  version: 1.0.0
//	name: My Mods
//	root: /home/player/mods
//	runId: 9f4c6c1e-6f7a-4b58-9f3f-0c2b7af19e55
//	mods:
//	  - ...
//	brokenCount: 1
//	issueCount: 3
//	duration: 1.284s
//
// # Parallel Scanning
//
// Packages are inspected concurrently via errgroup with bounded
// concurrency. Problems with individual packages never abort a scan;
// they become issues on that package's record. A scan fails only when
// the root folder itself is unreadable or the context is canceled.
//
// Mods are sorted by short name (full path as tie break) after
// collection, so repeated scans of the same folder produce stable,
// diffable output.
//
// # Diffing
//
// Diff matches mods across two reports by short name. A mod counts as
// updated when its version changed (compared numerically when both
// sides parse as mod versions, textually otherwise) or when its issue
// set changed. Reports load from local files or http(s) URLs in any
// format the serializer reads.
//
// # Observability
//
// The scanner exports Prometheus metrics:
//   - modcheck_collection_scan_duration_seconds: Time per scan
//   - modcheck_collection_scan_total{status}: Scan attempts by outcome
//   - modcheck_collection_packages: Packages in the last scan
//   - modcheck_collection_broken_packages: Unusable packages in the last scan
//
// # Integration
//
// The scanner is invoked by:
//   - pkg/cli - collection and diff commands
//
// It depends on:
//   - pkg/inspect - Per-package inspection
//   - pkg/serializer - Report loading for diffs
//   - pkg/header - Report envelope
package collection
