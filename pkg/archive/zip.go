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
	"archive/zip"
	"io"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/fsgmodding/modcheck/pkg/errors"
)

// zipHandle reads a zip-packaged mod. Entry names are sanitized on open;
// entries carrying traversal or absolute paths are dropped entirely.
type zipHandle struct {
	reader  *zip.ReadCloser
	entries []Entry
	files   map[string]*zip.File
}

// OpenZip opens a zip archive as a Handle.
func OpenZip(name string) (Handle, error) {
	r, err := zip.OpenReader(name)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnreadable, "package is not a readable zip archive", err)
	}

	h := &zipHandle{
		reader:  r,
		entries: make([]Entry, 0, len(r.File)),
		files:   make(map[string]*zip.File, len(r.File)),
	}
	for _, f := range r.File {
		clean, ok := sanitizeName(f.Name)
		if !ok {
			continue
		}
		isDir := f.FileInfo().IsDir()
		size := int64(f.UncompressedSize64)
		if isDir {
			size = 0
		}
		h.entries = append(h.entries, Entry{Name: clean, Size: size, IsDir: isDir})
		if !isDir {
			h.files[clean] = f
		}
	}
	return h, nil
}

// sanitizeName normalizes an archive-internal path to the shared relative
// form. Returns false for paths escaping the package root.
func sanitizeName(name string) (string, bool) {
	clean := strings.ReplaceAll(name, "\\", "/")
	clean = strings.TrimPrefix(clean, "/")
	clean = strings.TrimSuffix(clean, "/")
	if clean == "" || !fs.ValidPath(clean) {
		return "", false
	}
	return clean, true
}

func (h *zipHandle) List() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *zipHandle) Exists(name string) bool {
	_, ok := h.files[name]
	return ok
}

func (h *zipHandle) ReadBytes(name string) ([]byte, error) {
	f, ok := h.files[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "entry not found: "+name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnreadable, "entry not readable: "+name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnreadable, "entry not readable: "+name, err)
	}
	return data, nil
}

func (h *zipHandle) ReadText(name string) (string, error) {
	data, err := h.ReadBytes(name)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.New(errors.ErrCodeParse, "entry is not valid text: "+name)
	}
	return string(data), nil
}

func (h *zipHandle) IsFolder() bool {
	return false
}

func (h *zipHandle) Close() error {
	return h.reader.Close()
}
