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

// Package serializer renders inspection results to JSON, YAML, or a
// flattened text table, and reads collection reports back in for
// comparison.
//
// # Overview
//
// Every modcheck command ends by writing a record, report, or diff
// somewhere, and the diff command starts by reading two reports back.
// This package owns both directions so the rest of the tree never
// touches an encoder directly. The CLI writes through Writer, the API
// server answers through RespondJSON, and report loading goes through
// FromFile.
//
// # Supported Formats
//
// JSON:
//   - Indented, machine-parseable output
//   - The format mod sites and launcher integrations consume
//
// YAML:
//   - Block style via gopkg.in/yaml.v3
//   - Readable enough to eyeball a broken mod report in a terminal
//
// Table:
//   - Two column FIELD/VALUE listing with dotted key paths
//   - Write-only; a table cannot be read back into a report
//
// # Writing
//
// Write a record to a file, falling back to stdout when the path is
// empty or cannot be created:
//
//	ser := serializer.NewFileWriterOrStdout(serializer.FormatJSON, "record.json")
//	defer ser.Close()
//	if err := ser.Serialize(ctx, rec); err != nil {
//		return err
//	}
//
// # Reading
//
// Load a report by path or URL, with the format sniffed from the
// extension:
//
//	report, err := serializer.FromFile[collection.Report]("reports/mods.yaml")
//
// Remote reports (http:// or https://) are downloaded to a temp file
// that is removed when the read finishes.
//
// # HTTP Responses
//
// RespondJSON buffers the encoding before touching the wire so an
// encoding failure still produces a clean 500:
//
//	serializer.RespondJSON(w, http.StatusOK, rec)
package serializer
