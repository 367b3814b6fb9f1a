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
	"strings"

	"github.com/fsgmodding/modcheck/pkg/archive"
	"github.com/fsgmodding/modcheck/pkg/issue"
	"github.com/fsgmodding/modcheck/pkg/record"
)

// Per-package quantity allowances. Exceeding one flags the package but
// counting continues so the classification lists stay complete.
const (
	maxGRLE = 10
	maxPDF  = 1
	maxPNG  = 128
	maxTXT  = 2
)

// Size ceilings in bytes. I3D scenes and their caches share one ceiling.
const (
	sizeCache  = 10_485_760
	sizeDDS    = 12_582_912
	sizeGDM    = 18_874_368
	sizeShapes = 268_435_456
	sizeXML    = 262_144
)

// knownGood holds the extensions the game engine actually reads.
// Anything else is dead weight in the package.
var knownGood = map[string]bool{
	"png": true, "dds": true, "i3d": true, "shapes": true, "lua": true,
	"gdm": true, "cache": true, "xml": true, "grle": true, "pdf": true,
	"txt": true, "gls": true, "anim": true, "ogg": true,
}

// countContent walks the manifest once, filling the record's file
// classification lists and flagging oversize files, excessive counts,
// and foreign file types. Script files are tallied here so the badge
// classifier can tell script mods from pure content mods.
func countContent(rec *record.Record, entries []archive.Entry) {
	grle, pdf, png, txt := maxGRLE, maxPDF, maxPNG, maxTXT
	d := &rec.FileDetail

	for _, e := range entries {
		if e.IsDir {
			continue
		}

		if strings.Contains(e.Name, " ") {
			rec.AddIssue(issue.FileSpaces)
			d.SpaceFiles = append(d.SpaceFiles, e.Name)
		}

		ext := e.Ext()
		if !knownGood[ext] {
			// Loose database or license blobs travel with ripped DLCs.
			if ext == "dat" || ext == "l64" {
				rec.AddIssue(issue.LikelyPiracy)
			}
			rec.AddIssue(issue.QuantityExtra)
			d.ExtraFiles = append(d.ExtraFiles, e.Name)
			continue
		}

		switch ext {
		case "lua":
			rec.ModDesc.ScriptFiles++
		case "png":
			// Weight masks are the one PNG the engine reads directly.
			if !strings.HasSuffix(e.Name, "_weight.png") {
				d.ImageNonDDS = append(d.ImageNonDDS, e.Name)
				d.PNGTexture = append(d.PNGTexture, e.Name)
			}
			png--
		case "pdf":
			pdf--
		case "grle":
			grle--
		case "txt":
			txt--
		case "cache":
			if e.Size > sizeCache {
				rec.AddIssue(issue.OversizeI3D)
				d.TooBigFiles = append(d.TooBigFiles, e.Name)
			}
		case "i3d":
			d.I3DFiles = append(d.I3DFiles, e.Name)
			if e.Size > sizeCache {
				rec.AddIssue(issue.OversizeI3D)
				d.TooBigFiles = append(d.TooBigFiles, e.Name)
			}
		case "dds":
			d.ImageDDS = append(d.ImageDDS, e.Name)
			if e.Size > sizeDDS {
				rec.AddIssue(issue.OversizeDDS)
				d.TooBigFiles = append(d.TooBigFiles, e.Name)
			}
		case "gdm":
			if e.Size > sizeGDM {
				rec.AddIssue(issue.OversizeGDM)
				d.TooBigFiles = append(d.TooBigFiles, e.Name)
			}
		case "shapes":
			if e.Size > sizeShapes {
				rec.AddIssue(issue.OversizeSHAPES)
				d.TooBigFiles = append(d.TooBigFiles, e.Name)
			}
		case "xml":
			if e.Size > sizeXML {
				rec.AddIssue(issue.OversizeXML)
				d.TooBigFiles = append(d.TooBigFiles, e.Name)
			}
		}

		if grle < 0 {
			rec.AddIssue(issue.QuantityGRLE)
		}
		if pdf < 0 {
			rec.AddIssue(issue.QuantityPDF)
		}
		if png < 0 {
			rec.AddIssue(issue.QuantityPNG)
		}
		if txt < 0 {
			rec.AddIssue(issue.QuantityTXT)
		}
	}
}
