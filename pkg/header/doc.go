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

// Package header provides the common document header for report types.
//
// Every report this tool writes (collection reports, diffs, save-game
// summaries) embeds a Header so consumers can route on kind and check
// the schema version before parsing.
//
// # Header Structure
//
// The Header follows Kubernetes-style resource conventions:
//
//	{
//	  "kind": "CollectionReport",
//	  "apiVersion": "modcheck.fsgmodding.io/v1",
//	  "metadata": {
//	    "timestamp": "2025-06-30T10:30:00Z",
//	    "version": "v1.4.0"
//	  }
//	}
//
// # Usage
//
// Embed the Header in a report type and initialize it when the report
// is assembled:
//
//	type Report struct {
//	    header.Header `yaml:",inline"`
//	    ...
//	}
//
//	r := &Report{}
//	r.Init(header.KindCollectionReport, buildVersion)
//
// # API Versioning
//
// The APIVersion field enables evolution of the report formats.
// Consumers should check it before parsing:
//
//	if h.APIVersion != header.APIVersion {
//	    return fmt.Errorf("unsupported API version: %s", h.APIVersion)
//	}
//
// # Timestamps
//
// Metadata timestamps use UTC RFC3339 so reports diff cleanly across
// machines and timezones.
package header
