// Package parser defines the contract every statement format parser
// fulfils and the shared base they embed.
package parser

import "fjacquet/bank-statement/internal/logging"

// Parser detects and parses one statement format into records of type T.
type Parser[T any] interface {
	// Name is the short format name used in logs and errors.
	Name() string
	// IsSupported reports whether the input looks like this parser's
	// format. filename may be empty.
	IsSupported(filename, content string) bool
	// Parse reads a whole document. Any failure aborts the parse; no
	// partial result is returned.
	Parse(content string) ([]T, error)
}

// FormatValidator is implemented by parsers offering a stricter
// conformance check than IsSupported.
type FormatValidator interface {
	ValidateFormat(content string) (bool, error)
}

// LoggerConfigurable is implemented by components whose logger can be swapped.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}
