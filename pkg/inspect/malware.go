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

package inspect

import (
	"regexp"

	"github.com/fsgmodding/modcheck/pkg/archive"
	"github.com/fsgmodding/modcheck/pkg/issue"
	"github.com/fsgmodding/modcheck/pkg/record"
)

// notMalware lists mods known to call the deletion APIs legitimately,
// keyed by short name.
var notMalware = map[string]bool{
	"FS22_001_NoDelete":        true,
	"FS22_AutoDrive":           true,
	"FS22_Courseplay":          true,
	"FS22_FSG_Companion":       true,
	"FS22_VehicleControlAddon": true,
	"MultiOverlayV3":           true,
	"MultiOverlayV4":           true,
	"VehicleInspector":         true,
	"FS19_AutoDrive":           true,
	"FS19_Courseplay":          true,
	"FS19_GlobalCompany":       true,
}

var deleteCall = regexp.MustCompile(`(?m)\.delete(File|Folder)`)

// scanScripts statically matches every script in the package against
// the engine's file and folder deletion APIs. Mods on the allow list
// are skipped entirely; scripts that cannot be read are ignored.
func scanScripts(rec *record.Record, src archive.Handle, entries []archive.Entry) {
	if notMalware[rec.FileDetail.ShortName] {
		return
	}

	for _, e := range entries {
		if e.IsDir || e.Ext() != "lua" {
			continue
		}
		text, err := src.ReadText(e.Name)
		if err != nil {
			continue
		}
		if deleteCall.MatchString(text) {
			rec.AddIssue(issue.MaliciousCode)
		}
	}
}
