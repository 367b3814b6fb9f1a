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

// Package record defines the inspection report for a single mod package.
//
// A Record starts pessimistic (canNotUse true, placeholder title) and is
// filled in as the inspection pipeline learns more. Field names and their
// JSON shapes are a stable wire contract consumed by the FSG Mod Assistant
// frontend; changing them breaks existing consumers.
package record

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"

	"github.com/fsgmodding/modcheck/pkg/badge"
	"github.com/fsgmodding/modcheck/pkg/detail"
	"github.com/fsgmodding/modcheck/pkg/issue"
	"github.com/fsgmodding/modcheck/pkg/savegame"
)

// Record is the full inspection report for one mod package.
type Record struct {
	BadgeArray        badge.Badges      `json:"badgeArray"`
	CanNotUse         bool              `json:"canNotUse"`
	CurrentCollection string            `json:"currentCollection"`
	DetailIconLoaded  bool              `json:"detailIconLoaded"`
	FileDetail        FileDetail        `json:"fileDetail"`
	Issues            issue.Set         `json:"issues"`
	IncludeDetail     *detail.ModDetail `json:"includeDetail"`
	IncludeSaveGame   *savegame.Record  `json:"includeSaveGame"`
	L10N              L10N              `json:"l10n"`
	MD5Sum            *string           `json:"md5Sum"`
	ModDesc           Descriptor        `json:"modDesc"`
	UUID              string            `json:"uuid"`
}

// ZipEntry is one zip file found inside a mod pack.
type ZipEntry struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// FileDetail is the file-level metadata for a package.
type FileDetail struct {
	CopyName    *string    `json:"copyName"`
	ExtraFiles  []string   `json:"extraFiles"`
	FileDate    string     `json:"fileDate"`
	FileSize    int64      `json:"fileSize"`
	FullPath    string     `json:"fullPath"`
	I3DFiles    []string   `json:"i3dFiles"`
	ImageDDS    []string   `json:"imageDDS"`
	ImageNonDDS []string   `json:"imageNonDDS"`
	IsFolder    bool       `json:"isFolder"`
	IsSaveGame  bool       `json:"isSaveGame"`
	IsModPack   bool       `json:"isModPack"`
	PNGTexture  []string   `json:"pngTexture"`
	ShortName   string     `json:"shortName"`
	SpaceFiles  []string   `json:"spaceFiles"`
	TooBigFiles []string   `json:"tooBigFiles"`
	ZipFiles    []ZipEntry `json:"zipFiles"`
}

// New builds an empty, pessimistic report for the package at fullPath.
// The UUID is the MD5 of the full path so the same package on the same
// machine always maps to the same record.
func New(fullPath string, isFolder bool) *Record {
	return &Record{
		CanNotUse:  true,
		FileDetail: newFileDetail(fullPath, isFolder),
		Issues:     issue.NewSet(),
		L10N: L10N{
			Title:       map[string]string{"en": "--"},
			Description: map[string]string{"en": "--"},
		},
		ModDesc: newDescriptor(),
		UUID:    fmt.Sprintf("%x", md5.Sum([]byte(fullPath))),
	}
}

func newFileDetail(fullPath string, isFolder bool) FileDetail {
	return FileDetail{
		ExtraFiles:  []string{},
		FullPath:    fullPath,
		I3DFiles:    []string{},
		ImageDDS:    []string{},
		ImageNonDDS: []string{},
		IsFolder:    isFolder,
		PNGTexture:  []string{},
		ShortName:   shortName(fullPath),
		SpaceFiles:  []string{},
		TooBigFiles: []string{},
		ZipFiles:    []ZipEntry{},
	}
}

// shortName is the package's base name without its extension, which is
// how collections and dependency lists refer to mods.
func shortName(fullPath string) string {
	base := filepath.Base(fullPath)
	stem := base[:len(base)-len(path.Ext(base))]
	if stem == "" {
		return base
	}
	return stem
}

// AddIssue records issues without changing usability.
func (r *Record) AddIssue(codes ...issue.Code) {
	r.Issues.Add(codes...)
}

// AddFatal records issues and marks the package unusable.
func (r *Record) AddFatal(codes ...issue.Code) {
	r.CanNotUse = true
	r.Issues.Add(codes...)
}

// UpdateBadges recomputes the badge array from the issues and facts
// collected so far. Call it after the pipeline finishes mutating the
// record.
func (r *Record) UpdateBadges() {
	r.BadgeArray = badge.Classify(r.Issues, badge.Facts{
		Folder:      r.FileDetail.IsFolder,
		SaveGame:    r.FileDetail.IsSaveGame,
		MultiPlayer: r.ModDesc.MultiPlayer,
		ScriptFiles: r.ModDesc.ScriptFiles,
	})
}

// String renders the record as compact JSON, "{}" if it cannot be
// marshaled.
func (r *Record) String() string {
	out, err := json.Marshal(r)
	if err != nil {
		return "{}"
	}
	return string(out)
}
