// Package models holds the statement data model: the supported formats, the
// per-format parsed records, the unified Transaction and the generic
// conversion from parsed records into caller types.
package models

import (
	"fmt"
	"strings"

	"fjacquet/bank-statement/internal/parsererror"
)

// FileFormat identifies a statement format. The set is closed: each value
// has exactly one parser and one ParsedTransaction implementation.
type FileFormat string

const (
	FormatQFX FileFormat = "qfx"
	FormatCSV FileFormat = "csv"
)

// SupportedFormats lists formats in detection preference order.
func SupportedFormats() []FileFormat {
	return []FileFormat{FormatQFX, FormatCSV}
}

// ParseFileFormat maps user input ("qfx", "OFX", "csv") to a FileFormat.
func ParseFileFormat(s string) (FileFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "qfx", "ofx":
		return FormatQFX, nil
	case "csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %q", parsererror.ErrUnsupportedFormat, s)
}

func (f FileFormat) String() string {
	return string(f)
}

// Valid reports whether f is one of SupportedFormats.
func (f FileFormat) Valid() bool {
	return f == FormatQFX || f == FormatCSV
}

// UnmarshalText lets FileFormat be read from config, JSON and YAML.
func (f *FileFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseFileFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
