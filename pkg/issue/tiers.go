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

// brokenSet lists codes that render a mod unusable by the game.
var brokenSet = codeSet(
	GarbageFile,
	LikelySaveGame,
	LikelyZipPack,
	NameInvalid,
	NameStartsDigit,
	UnreadableZip,
	UnsupportedArchive,
	DescParseError,
	DescVersionOldOrMissing,
	DescMissing,
)

// advisorySet lists codes worth fixing that do not stop the mod loading.
var advisorySet = codeSet(
	LikelyPiracy,
	MaliciousCode,
	NoModIcon,
	NoModVersion,
	DescDamaged,
	FileSpaces,
	MissingL10N,
	OversizeDDS,
	OversizeGDM,
	OversizeI3D,
	OversizeSHAPES,
	OversizeXML,
	QuantityExtra,
	QuantityGRLE,
	QuantityPDF,
	QuantityPNG,
	QuantityTXT,
)

// notModSet lists codes that mean the package is not a mod at all.
var notModSet = codeSet(
	GarbageFile,
	LikelySaveGame,
	LikelyZipPack,
	UnreadableZip,
	UnsupportedArchive,
	DescMissing,
)

func codeSet(codes ...Code) map[Code]struct{} {
	m := make(map[Code]struct{}, len(codes))
	for _, c := range codes {
		m[c] = struct{}{}
	}
	return m
}

// Broken reports whether the code belongs to the tier that makes a mod
// unusable.
func (c Code) Broken() bool {
	_, ok := brokenSet[c]
	return ok
}

// Advisory reports whether the code belongs to the fix-it tier.
func (c Code) Advisory() bool {
	_, ok := advisorySet[c]
	return ok
}

// NotMod reports whether the code means the package is not a mod.
func (c Code) NotMod() bool {
	_, ok := notModSet[c]
	return ok
}
