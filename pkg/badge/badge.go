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

// Package badge reduces an accumulated issue set to the small fixed
// vocabulary of status badges shown next to a mod.
package badge

import (
	"encoding/json"
	"fmt"

	"github.com/fsgmodding/modcheck/pkg/issue"
)

// Badges holds the classification flags for one package. Badges carry no
// severity of their own; each one is derived from the issue set and the
// package facts, never stored independently.
type Badges struct {
	// Broken means the game will refuse to load the mod.
	Broken bool
	// Folder means the package is an unzipped folder.
	Folder bool
	// Malware means a script calls deletion APIs.
	Malware bool
	// NoMP means the mod cannot be used in multiplayer.
	NoMP bool
	// NotMod means the package is not a mod at all.
	NotMod bool
	// PCOnly means the mod scripts and so cannot run on consoles.
	PCOnly bool
	// Problem means the mod works but has issues worth fixing.
	Problem bool
	// SaveGame means the package is a save game.
	SaveGame bool
}

// Facts carries the non-issue inputs to badge derivation.
type Facts struct {
	// Folder is true when the package is a directory.
	Folder bool
	// SaveGame is true when save-game markers were detected.
	SaveGame bool
	// MultiPlayer is the descriptor's multiplayer-supported flag.
	MultiPlayer bool
	// ScriptFiles is the count of script files in the manifest.
	ScriptFiles int
}

// Classify derives the badge flags from the final issue set and package
// facts. A save game suppresses broken and problem since those only make
// sense for actual mods.
func Classify(issues issue.Set, facts Facts) Badges {
	b := Badges{
		NotMod: issues.AnyNotMod(),
		PCOnly: facts.ScriptFiles > 0,
	}

	if facts.SaveGame {
		b.SaveGame = true
		return b
	}

	b.Folder = facts.Folder
	b.Malware = issues.Has(issue.MaliciousCode)
	b.Broken = issues.AnyBroken()
	b.Problem = issues.AnyAdvisory()
	b.NoMP = !b.NotMod && !b.Broken && (facts.Folder || !facts.MultiPlayer)
	return b
}

// Names returns the active badge names, ordered for stable serialization.
func (b Badges) Names() []string {
	names := make([]string, 0, 8)
	if b.Broken {
		names = append(names, "broken")
	}
	if b.Folder {
		names = append(names, "folder")
	}
	if b.Malware {
		names = append(names, "malware")
	}
	if b.NoMP {
		names = append(names, "noMP")
	}
	if b.NotMod {
		names = append(names, "notmod")
	}
	if b.PCOnly {
		names = append(names, "pconly")
	}
	if b.Problem {
		names = append(names, "problem")
	}
	if b.SaveGame {
		names = append(names, "savegame")
	}
	return names
}

// MarshalJSON serializes the badges as the sorted array of active names.
func (b Badges) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Names())
}

// UnmarshalJSON restores badge flags from an array of names.
func (b *Badges) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	out := Badges{}
	for _, name := range names {
		switch name {
		case "broken":
			out.Broken = true
		case "folder":
			out.Folder = true
		case "malware":
			out.Malware = true
		case "noMP":
			out.NoMP = true
		case "notmod":
			out.NotMod = true
		case "pconly":
			out.PCOnly = true
		case "problem":
			out.Problem = true
		case "savegame":
			out.SaveGame = true
		default:
			return fmt.Errorf("unknown badge %q", name)
		}
	}
	*b = out
	return nil
}
