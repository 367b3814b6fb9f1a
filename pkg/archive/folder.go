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

package archive

import (
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/fsgmodding/modcheck/pkg/errors"
)

// folderHandle reads an unzipped mod directly from the file system.
type folderHandle struct {
	root string
}

// OpenFolder opens a directory as a Handle.
func OpenFolder(name string) (Handle, error) {
	fi, err := os.Stat(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, "package does not exist", err)
		}
		return nil, errors.Wrap(errors.ErrCodeUnreadable, "package is not accessible", err)
	}
	if !fi.IsDir() {
		return nil, errors.New(errors.ErrCodeUnreadable, "package is not a directory")
	}
	return &folderHandle{root: name}, nil
}

func (h *folderHandle) List() []Entry {
	var entries []Entry

	_ = filepath.WalkDir(h.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, never fatal.
			return nil
		}
		if p == h.root {
			return nil
		}
		rel, err := filepath.Rel(h.root, p)
		if err != nil {
			return nil
		}

		e := Entry{Name: filepath.ToSlash(rel), IsDir: d.IsDir()}
		if !e.IsDir {
			if fi, err := d.Info(); err == nil {
				e.Size = fi.Size()
			}
		}
		entries = append(entries, e)
		return nil
	})

	return entries
}

func (h *folderHandle) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(h.root, filepath.FromSlash(name)))
	return err == nil
}

func (h *folderHandle) ReadBytes(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(h.root, filepath.FromSlash(name)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, "entry not found: "+name, err)
		}
		return nil, errors.Wrap(errors.ErrCodeUnreadable, "entry not readable: "+name, err)
	}
	return data, nil
}

func (h *folderHandle) ReadText(name string) (string, error) {
	data, err := h.ReadBytes(name)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.New(errors.ErrCodeParse, "entry is not valid text: "+name)
	}
	return string(data), nil
}

func (h *folderHandle) IsFolder() bool {
	return true
}

func (h *folderHandle) Close() error {
	return nil
}
