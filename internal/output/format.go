// Package output renders populations as CSV, JSON, JSON Lines or XLSX.
package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is matched by every *FormatError.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// FormatError reports an output format or file extension that cannot be written.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v %q (want csv, json, jsonl or xlsx)", ErrUnsupportedFormat, e.Value)
}

func (e *FormatError) Unwrap() error { return ErrUnsupportedFormat }

// Format is an output encoding.
type Format int

const (
	CSV Format = iota + 1
	JSON
	JSONL
	XLSX
)

var formatNames = map[Format]string{
	CSV:   "csv",
	JSON:  "json",
	JSONL: "jsonl",
	XLSX:  "xlsx",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ContentType returns the media type for HTTP responses.
func (f Format) ContentType() string {
	switch f {
	case CSV:
		return "text/csv; charset=utf-8"
	case JSON:
		return "application/json"
	case JSONL:
		return "application/x-ndjson"
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// ParseFormat accepts a format name or extension, with or without the dot.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	if name == "ndjson" {
		return JSONL, nil
	}
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return 0, &FormatError{Value: s}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, &FormatError{Value: path}
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return 0, &FormatError{Value: path}
	}
	return f, nil
}

// HeaderStyle names the CSV columns and JSON keys.
type HeaderStyle int

const (
	// Snake is first_name, birth_date, ...
	Snake HeaderStyle = iota
	// Camel is firstName, birthDate, ...
	Camel
	// Pretty is "First Name", "Birth Date", ...
	Pretty
)

func (h HeaderStyle) String() string {
	switch h {
	case Camel:
		return "camel"
	case Pretty:
		return "pretty"
	default:
		return "snake"
	}
}

// ParseHeaderStyle parses "snake", "camel" or "pretty".
func ParseHeaderStyle(s string) (HeaderStyle, error) {
	switch strings.ToLower(s) {
	case "", "snake":
		return Snake, nil
	case "camel":
		return Camel, nil
	case "pretty":
		return Pretty, nil
	default:
		return 0, fmt.Errorf("bad header format %q (want snake, camel or pretty)", s)
	}
}
