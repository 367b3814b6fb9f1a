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
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fsgmodding/modcheck/pkg/defaults"
	moderrors "github.com/fsgmodding/modcheck/pkg/errors"
	"github.com/fsgmodding/modcheck/pkg/serializer"
	"github.com/fsgmodding/modcheck/pkg/server"
)

// uploadField is the multipart form field carrying the mod package.
const uploadField = "mod"

// HandleInspect processes mod package uploads. It accepts POST requests with
// multipart/form-data carrying the package zip under the "mod" field, spools
// the upload to a temp directory, and returns the inspection record as JSON.
// A damaged or invalid package is still a successful inspection: its problems
// are reported as issues on the record, not as an HTTP error.
func (ins *Inspector) HandleInspect(w http.ResponseWriter, r *http.Request) {
	// Add request-scoped timeout
	ctx, cancel := context.WithTimeout(r.Context(), defaults.InspectHandlerTimeout)
	defer cancel()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, moderrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"POST"},
			})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, defaults.InspectUploadLimit)

	file, fileHeader, err := r.FormFile(uploadField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			server.WriteError(w, r, http.StatusRequestEntityTooLarge, moderrors.ErrCodeInvalidRequest,
				"Upload exceeds size limit", false, map[string]any{
					"limitBytes": maxBytesErr.Limit,
				})
			return
		}
		server.WriteError(w, r, http.StatusBadRequest, moderrors.ErrCodeInvalidRequest,
			"Request must be multipart/form-data with a 'mod' file field", false, map[string]any{
				"error": err.Error(),
			})
		return
	}
	defer file.Close()

	// Name checks run against the uploaded file's own name, so the spool
	// file must keep it. Base strips any directory the client sent along.
	name := filepath.Base(fileHeader.Filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "upload.zip"
	}

	dir, err := os.MkdirTemp("", "modcheck-upload-")
	if err != nil {
		server.WriteError(w, r, http.StatusInternalServerError, moderrors.ErrCodeInternal,
			"Failed to spool upload", true, nil)
		return
	}
	defer os.RemoveAll(dir)

	dst := filepath.Join(dir, name)
	out, err := os.Create(dst)
	if err != nil {
		server.WriteError(w, r, http.StatusInternalServerError, moderrors.ErrCodeInternal,
			"Failed to spool upload", true, nil)
		return
	}

	written, err := io.Copy(out, file)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		server.WriteError(w, r, http.StatusInternalServerError, moderrors.ErrCodeInternal,
			"Failed to spool upload", true, map[string]any{
				"error": err.Error(),
			})
		return
	}

	rec := ins.Inspect(ctx, dst)

	// Key the response by the client-supplied name, not the spool path.
	rec.UUID = fmt.Sprintf("%x", md5.Sum([]byte(name)))
	rec.FileDetail.FullPath = name

	slog.Debug("upload inspected",
		"file", name,
		"bytes", written,
		"issues", rec.Issues.Len(),
		"canNotUse", rec.CanNotUse,
	)

	serializer.RespondJSON(w, http.StatusOK, rec)
}
