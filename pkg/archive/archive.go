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

// Package archive reads mod packages uniformly whether they ship as a zip
// archive or an unzipped folder.
//
// Both backends expose the same relative, forward-slash entry names so the
// inspection pipeline never needs to know which kind of package it is
// reading. A Handle is owned by exactly one inspection run and is not safe
// for concurrent use.
package archive

import (
	"os"
	"path"
	"strings"

	"github.com/fsgmodding/modcheck/pkg/errors"
)

// Entry describes one file or directory inside a package.
type Entry struct {
	// Name is the entry's path relative to the package root, always with
	// forward slashes and no trailing separator.
	Name string
	// Size is the uncompressed size in bytes, zero for directories.
	Size int64
	// IsDir marks directory entries.
	IsDir bool
}

// Ext returns the entry's lowercased file extension without the dot, or an
// empty string when there is none.
func (e Entry) Ext() string {
	ext := path.Ext(e.Name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(ext[1:])
}

// BaseName returns the entry's final path element.
func (e Entry) BaseName() string {
	return path.Base(e.Name)
}

// Handle reads the contents of one opened package.
type Handle interface {
	// List returns every entry in the package. It never fails; an
	// unreadable package yields an empty list.
	List() []Entry

	// Exists reports whether the named entry is present.
	Exists(name string) bool

	// ReadText returns the named entry decoded as UTF-8 text.
	ReadText(name string) (string, error)

	// ReadBytes returns the named entry's raw contents.
	ReadBytes(name string) ([]byte, error)

	// IsFolder reports whether the package is an unzipped folder.
	IsFolder() bool

	// Close releases the underlying file handle. Folder handles hold no
	// resources; Close is then a no-op.
	Close() error
}

// Open returns a Handle for the package at path, selecting the folder or
// zip backend from the path type. The error carries ErrCodeNotFound when
// the path does not exist and ErrCodeUnreadable when it exists but cannot
// be opened as a package.
func Open(name string) (Handle, error) {
	fi, err := os.Stat(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, "package does not exist", err)
		}
		return nil, errors.Wrap(errors.ErrCodeUnreadable, "package is not accessible", err)
	}
	if fi.IsDir() {
		return OpenFolder(name)
	}
	return OpenZip(name)
}
