package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Writer serializes records and reports to a single destination.
// Writers returned by NewFileWriterOrStdout own their file handle and
// must be closed.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

var _ Serializer = (*Writer)(nil)

// NewWriter returns a Writer targeting output. A nil output means
// stdout, and an unknown format degrades to JSON rather than failing,
// so command output always lands somewhere.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	return &Writer{format: normalize(format), output: output}
}

// NewStdoutWriter returns a Writer targeting stdout.
func NewStdoutWriter(format Format) *Writer {
	return &Writer{format: normalize(format), output: os.Stdout}
}

// NewFileWriterOrStdout returns a Writer targeting the file at path,
// created fresh. An empty path, or one that cannot be created, falls
// back to stdout so the inspection result is never silently lost.
// Close the returned Writer to flush the file handle.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	path = strings.TrimSpace(path)
	if path == "" {
		return NewStdoutWriter(format)
	}

	file, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create output file", "error", err, "path", path)
		return NewStdoutWriter(format)
	}

	return &Writer{format: normalize(format), output: file, closer: file}
}

func normalize(f Format) Format {
	if f.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", f)
		return FormatJSON
	}
	return f
}

// Serialize writes v in the Writer's format. The context is accepted
// for interface symmetry with serializers that do network I/O; file
// and stdout writes complete without consulting it.
func (w *Writer) Serialize(ctx context.Context, v any) error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.output)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to serialize to JSON: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w.output)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to serialize to YAML: %w", err)
		}
	case FormatTable:
		return w.writeTable(v)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
	return nil
}

// Close releases the output file handle, if any. Safe to call more
// than once; a no-op for stdout writers.
func (w *Writer) Close() error {
	if w == nil || w.closer == nil {
		return nil
	}
	c := w.closer
	w.closer = nil
	return c.Close()
}

// writeTable flattens v into dotted key paths and prints them as a
// sorted FIELD/VALUE table. Nested records keep their field names as
// path segments, slices index with [n].
func (w *Writer) writeTable(v any) error {
	rows := map[string]any{}
	flattenInto(rows, reflect.ValueOf(v), "")
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w.output, "<empty>")
		return err
	}

	fields := make([]string, 0, len(rows))
	for f := range rows {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	fmt.Fprintln(tw, "-----\t-----")
	for _, f := range fields {
		fmt.Fprintf(tw, "%s\t%v\n", f, rows[f])
	}
	return tw.Flush()
}

func flattenInto(rows map[string]any, val reflect.Value, path string) {
	if !val.IsValid() {
		return
	}

	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			if path != "" {
				rows[path] = nil
			}
			return
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Struct:
		t := val.Type()
		for i := 0; i < val.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			flattenInto(rows, val.Field(i), dotted(path, t.Field(i).Name))
		}
	case reflect.Map:
		for _, k := range val.MapKeys() {
			flattenInto(rows, val.MapIndex(k), dotted(path, fmt.Sprintf("%v", k.Interface())))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < val.Len(); i++ {
			flattenInto(rows, val.Index(i), dotted(path, fmt.Sprintf("[%d]", i)))
		}
	default:
		if path == "" {
			path = "value"
		}
		rows[path] = val.Interface()
	}
}

func dotted(path, segment string) string {
	if path == "" {
		return segment
	}
	if segment == "" {
		return path
	}
	return path + "." + segment
}
