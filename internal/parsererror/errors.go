// Package parsererror defines the error kinds returned while detecting,
// parsing and converting statements. Callers match kinds with errors.Is and
// pull context out of the typed errors with errors.As.
package parsererror

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Error kinds.
var (
	// ErrUnsupportedFormat means detection matched no known statement format.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrParseFailed covers structural and field-level failures inside a parser.
	ErrParseFailed = errors.New("parse failed")
	// ErrInvalidAmount is wrapped by a ParseError when an amount token is not an exact decimal.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrMissingInput means neither content nor a file path was supplied.
	ErrMissingInput = errors.New("missing input: no content or file path provided")
	// ErrInvalidDate is the parent kind of both per-format date errors.
	ErrInvalidDate    = errors.New("invalid date")
	ErrQfxDateInvalid = errors.New("invalid QFX date")
	ErrCsvDateInvalid = errors.New("invalid CSV date")
	// ErrReadContent means the statement file could not be read.
	ErrReadContent = errors.New("failed to read content")
)

// Date formats carried by DateError.
const (
	DateFormatQFX = "qfx"
	DateFormatCSV = "csv"
)

// ParseError is a failure inside a format parser. Field and Value are set for
// field-level failures (an amount that is not a decimal); Reason alone is set
// for structural ones (missing root tag, no transaction data).
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Reason string
	Err    error
}

// NewParseError builds a structural ParseError.
func NewParseError(parser, reason string, err error) *ParseError {
	return &ParseError{Parser: parser, Reason: reason, Err: err}
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: failed to parse %s='%s': %v", e.Parser, e.Field, e.Value, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Parser, ErrParseFailed, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Parser, ErrParseFailed, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports every ParseError as ErrParseFailed.
func (e *ParseError) Is(target error) bool {
	return target == ErrParseFailed
}

// DateError is a date token that could not be resolved to a calendar date.
type DateError struct {
	Format string
	Value  string
	Err    error
}

func (e *DateError) Error() string {
	kind := ErrInvalidDate
	switch e.Format {
	case DateFormatQFX:
		kind = ErrQfxDateInvalid
	case DateFormatCSV:
		kind = ErrCsvDateInvalid
	}
	if e.Err != nil {
		return fmt.Sprintf("%s '%s': %v", kind, e.Value, e.Err)
	}
	return fmt.Sprintf("%s '%s'", kind, e.Value)
}

func (e *DateError) Unwrap() error {
	return e.Err
}

// Is matches ErrInvalidDate and the sentinel of the error's own format.
func (e *DateError) Is(target error) bool {
	switch target {
	case ErrInvalidDate:
		return true
	case ErrQfxDateInvalid:
		return e.Format == DateFormatQFX
	case ErrCsvDateInvalid:
		return e.Format == DateFormatCSV
	}
	return false
}

// ReadContentError wraps a failure reading a statement from disk.
type ReadContentError struct {
	Path string
	Err  error
}

func (e *ReadContentError) Error() string {
	return fmt.Sprintf("%s '%s': %v", ErrReadContent, e.Path, e.Err)
}

func (e *ReadContentError) Unwrap() error {
	return e.Err
}

func (e *ReadContentError) Is(target error) bool {
	return target == ErrReadContent
}

// InvalidFormatError is returned when strict validation rejects a statement
// that detection accepted.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// Snippet shortens content to at most max bytes for
// InvalidFormatError.ActualContentSnippet, never splitting a UTF-8 sequence.
func Snippet(content string, max int) string {
	if len(content) <= max {
		return content
	}
	end := max
	for end > 0 && !utf8.RuneStart(content[end]) {
		end--
	}
	return content[:end] + "..."
}
