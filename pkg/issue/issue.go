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

// Package issue defines the closed set of findings the inspection pipeline
// can attach to a mod package, together with their stable wire tokens.
//
// Each Code serializes to a fixed uppercase-snake token. The tokens are a
// wire contract consumed by downstream tooling and must never be renamed or
// renumbered; new codes may only be appended. The token table is explicit
// rather than derived from the constant names so internal renames cannot
// leak into the contract.
package issue

import (
	"encoding/json"
	"fmt"
)

// Code identifies a single finding about a mod package.
type Code int

const (
	// GarbageFile marks a file that is not an archive or folder at all.
	GarbageFile Code = iota
	// LikelyCopy marks a base name that looks like a duplicated download.
	LikelyCopy
	// LikelySaveGame marks a package that contains a save game, not a mod.
	LikelySaveGame
	// LikelyZipPack marks an archive that only contains other zip files.
	LikelyZipPack
	// NameInvalid marks a base name the game will refuse to load.
	NameInvalid
	// NameStartsDigit marks a base name starting with a digit.
	NameStartsDigit
	// UnreadableZip marks an archive that exists but cannot be opened.
	UnreadableZip
	// UnsupportedArchive marks a non-zip archive format (rar, 7z).
	UnsupportedArchive
	// LikelyPiracy marks content that suggests a paid-DLC rip.
	LikelyPiracy
	// MaliciousCode marks scripts that call file or folder deletion APIs.
	MaliciousCode
	// NoMultiplayerUnzipped marks an unzipped mod, which multiplayer rejects.
	NoMultiplayerUnzipped
	// DescDamaged marks a descriptor that parsed only after recovery.
	DescDamaged
	// DescMissing marks a package without a descriptor document.
	DescMissing
	// NoModIcon marks a descriptor whose icon is absent from the package.
	NoModIcon
	// NoModVersion marks a descriptor without a version element.
	NoModVersion
	// DescParseError marks a descriptor that is not well formed XML.
	DescParseError
	// DescVersionOldOrMissing marks a descriptor schema version that is
	// absent or predates the supported game generation.
	DescVersionOldOrMissing
	// FileSpaces marks entries whose names contain literal spaces.
	FileSpaces
	// MissingL10N marks title or description text without locale entries.
	MissingL10N
	// OversizeDDS marks a DDS texture over the size ceiling.
	OversizeDDS
	// OversizeGDM marks a GDM density map over the size ceiling.
	OversizeGDM
	// OversizeI3D marks an I3D scene file over the size ceiling.
	OversizeI3D
	// OversizeSHAPES marks a shapes file over the size ceiling.
	OversizeSHAPES
	// OversizeXML marks an XML document over the size ceiling.
	OversizeXML
	// QuantityExtra marks files of types the game never reads.
	QuantityExtra
	// QuantityGRLE marks more GRLE info layers than the game allows.
	QuantityGRLE
	// QuantityPDF marks more than the single permitted PDF.
	QuantityPDF
	// QuantityPNG marks more PNG files than any mod reasonably ships.
	QuantityPNG
	// QuantityTXT marks more text files than any mod reasonably ships.
	QuantityTXT
)

// tokens maps each code to its stable wire token. Entries are part of the
// output contract: append-only, never rename.
var tokens = map[Code]string{
	GarbageFile:             "FILE_ERROR_GARBAGE_FILE",
	LikelyCopy:              "FILE_ERROR_LIKELY_COPY",
	LikelySaveGame:          "FILE_IS_A_SAVEGAME",
	LikelyZipPack:           "FILE_ERROR_LIKELY_ZIP_PACK",
	NameInvalid:             "FILE_ERROR_NAME_INVALID",
	NameStartsDigit:         "FILE_ERROR_NAME_STARTS_DIGIT",
	UnreadableZip:           "FILE_ERROR_UNREADABLE_ZIP",
	UnsupportedArchive:      "FILE_ERROR_UNSUPPORTED_ARCHIVE",
	LikelyPiracy:            "INFO_MIGHT_BE_PIRACY",
	MaliciousCode:           "MALICIOUS_CODE",
	NoMultiplayerUnzipped:   "INFO_NO_MULTIPLAYER_UNZIPPED",
	DescDamaged:             "MOD_ERROR_MODDESC_DAMAGED_RECOVERABLE",
	DescMissing:             "NOT_MOD_MODDESC_MISSING",
	NoModIcon:               "MOD_ERROR_NO_MOD_ICON",
	NoModVersion:            "MOD_ERROR_NO_MOD_VERSION",
	DescParseError:          "NOT_MOD_MODDESC_PARSE_ERROR",
	DescVersionOldOrMissing: "NOT_MOD_MODDESC_VERSION_OLD_OR_MISSING",
	FileSpaces:              "PERF_SPACE_IN_FILE",
	MissingL10N:             "PERF_L10N_NOT_SET",
	OversizeDDS:             "PERF_DDS_TOO_BIG",
	OversizeGDM:             "PERF_GDM_TOO_BIG",
	OversizeI3D:             "PERF_I3D_TOO_BIG",
	OversizeSHAPES:          "PERF_SHAPES_TOO_BIG",
	OversizeXML:             "PERF_XML_TOO_BIG",
	QuantityExtra:           "PERF_HAS_EXTRA",
	QuantityGRLE:            "PERF_GRLE_TOO_MANY",
	QuantityPDF:             "PERF_PDF_TOO_MANY",
	QuantityPNG:             "PERF_PNG_TOO_MANY",
	QuantityTXT:             "PERF_TXT_TOO_MANY",
}

// byToken is the reverse of tokens, built once at init.
var byToken = func() map[string]Code {
	m := make(map[string]Code, len(tokens))
	for c, t := range tokens {
		m[t] = c
	}
	return m
}()

// Token returns the stable wire token for the code, or an empty string for
// an unknown code.
func (c Code) Token() string {
	return tokens[c]
}

// String implements fmt.Stringer using the wire token.
func (c Code) String() string {
	if t, ok := tokens[c]; ok {
		return t
	}
	return fmt.Sprintf("UNKNOWN_ISSUE_%d", int(c))
}

// MarshalJSON serializes the code as its wire token.
func (c Code) MarshalJSON() ([]byte, error) {
	t, ok := tokens[c]
	if !ok {
		return nil, fmt.Errorf("unknown issue code %d", int(c))
	}
	return json.Marshal(t)
}

// UnmarshalJSON restores a code from its wire token.
func (c *Code) UnmarshalJSON(data []byte) error {
	var t string
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	code, ok := byToken[t]
	if !ok {
		return fmt.Errorf("unknown issue token %q", t)
	}
	*c = code
	return nil
}

// Parse returns the code for a wire token.
func Parse(token string) (Code, error) {
	c, ok := byToken[token]
	if !ok {
		return 0, fmt.Errorf("unknown issue token %q", token)
	}
	return c, nil
}

// All returns every defined code, ordered by wire token.
func All() []Code {
	out := make([]Code, 0, len(tokens))
	for c := range tokens {
		out = append(out, c)
	}
	sortCodes(out)
	return out
}
