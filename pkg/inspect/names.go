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
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fsgmodding/modcheck/pkg/issue"
	"github.com/fsgmodding/modcheck/pkg/record"
)

var (
	unzipPattern    = regexp.MustCompile(`(?i)unzip`)
	digitPattern    = regexp.MustCompile(`^\d`)
	goodNamePattern = regexp.MustCompile(`^[A-Z_a-z]\w+$`)
	copyPattern     = regexp.MustCompile(`^(?P<name>[A-Za-z]\w+)(?: - .+$| \(.+$)`)
)

// checkName applies the game's file naming rules to the package and
// reports whether the name is loadable at all. Advisory findings
// (digit prefix, "unzip" in the name) are recorded along the way; a
// false return means the game would refuse the file outright.
func checkName(rec *record.Record) bool {
	if !rec.FileDetail.IsFolder {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(rec.FileDetail.FullPath), "."))
		if ext != "zip" {
			if ext == "rar" || ext == "7z" {
				rec.AddIssue(issue.UnsupportedArchive)
			} else {
				rec.AddIssue(issue.GarbageFile)
			}
			return false
		}
	}

	short := rec.FileDetail.ShortName

	if unzipPattern.MatchString(short) {
		rec.AddIssue(issue.LikelyZipPack)
	}
	if digitPattern.MatchString(short) {
		rec.AddIssue(issue.NameStartsDigit)
	}

	if goodNamePattern.MatchString(short) {
		return true
	}

	// A well-formed stem followed by " - suffix" or " (suffix" is the
	// signature of a browser re-download.
	if m := copyPattern.FindStringSubmatch(short); m != nil {
		rec.AddIssue(issue.LikelyCopy)
		rec.FileDetail.CopyName = &m[1]
	}
	return false
}
