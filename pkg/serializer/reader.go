package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FormatFromPath sniffs the serialization format from a file
// extension: .json is JSON, .yaml and .yml are YAML, .table and .txt
// are table output. Matching is case insensitive. Anything else warns
// and falls back to JSON, which is what report producing tools emit
// by default.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".table", ".txt":
		return FormatTable
	}
	slog.Warn("unknown file extension, defaulting to JSON", "path", path)
	return FormatJSON
}

// Reader decodes JSON or YAML input back into report structures.
// Readers over files hold the handle until Close; readers over remote
// URLs also own a downloaded temp file that Close removes.
type Reader struct {
	format   Format
	input    io.Reader
	closer   io.Closer
	tempPath string
}

// NewReader wraps an arbitrary input stream. Table output cannot be
// read back, and unknown formats are rejected rather than guessed. If
// input also implements io.Closer it will be closed by Close.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if err := decodable(format); err != nil {
		return nil, err
	}

	r := &Reader{format: format, input: input}
	if c, ok := input.(io.Closer); ok {
		r.closer = c
	}
	return r, nil
}

// NewFileReader opens path for decoding. The path may be a local file
// or an http(s) URL; remote reports are downloaded to a temp file
// first.
func NewFileReader(format Format, path string) (*Reader, error) {
	if err := decodable(format); err != nil {
		return nil, err
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return fetchToTemp(format, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Reader{format: format, input: file, closer: file}, nil
}

// NewFileReaderAuto opens path with the format sniffed from its
// extension.
func NewFileReaderAuto(path string) (*Reader, error) {
	return NewFileReader(FormatFromPath(path), path)
}

func decodable(format Format) error {
	if format.IsUnknown() {
		return fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return fmt.Errorf("table format does not support deserialization")
	}
	return nil
}

func fetchToTemp(format Format, url string) (*Reader, error) {
	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("modcheck-%d.tmp", time.Now().UnixNano()))
	if err := NewFetcher().Download(context.Background(), url, tempPath); err != nil {
		return nil, fmt.Errorf("failed to download remote file: %w", err)
	}

	file, err := os.Open(tempPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open downloaded file: %w", err)
	}
	return &Reader{format: format, input: file, closer: file, tempPath: tempPath}, nil
}

// Deserialize decodes the next document from the input into v, which
// must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil || r.input == nil {
		return fmt.Errorf("reader has no input source")
	}

	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
	return nil
}

// Close releases the input handle and removes the downloaded temp
// file, if any. Safe on a nil Reader and safe to call repeatedly.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}

	var err error
	if r.closer != nil {
		err = r.closer.Close()
		r.closer = nil
	}
	if r.tempPath != "" {
		if rmErr := os.Remove(r.tempPath); rmErr != nil && err == nil {
			err = rmErr
		}
		r.tempPath = ""
	}
	return err
}

// FromFile reads and decodes one value of type T from path, local or
// remote, sniffing the format from the extension.
//
//	report, err := serializer.FromFile[collection.Report]("report.json")
func FromFile[T any](path string) (*T, error) {
	r, err := NewFileReaderAuto(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", path, err)
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil {
			slog.Warn("failed to close reader", "error", closeErr, "path", path)
		}
	}()

	var v T
	if err := r.Deserialize(&v); err != nil {
		return nil, fmt.Errorf("failed to deserialize %q: %w", path, err)
	}
	return &v, nil
}
