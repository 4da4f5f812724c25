package parser

import (
	"path/filepath"
	"strings"

	"fjacquet/bank-statement/internal/logging"
)

// BaseParser carries the logger shared by every parser. Parsers embed it:
//
//	type Parser struct {
//		parser.BaseParser
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser returns a BaseParser using logger, or the default logger
// when logger is nil.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.Default()
	}
	return BaseParser{logger: logger}
}

// SetLogger replaces the logger; nil is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger.
func (b *BaseParser) GetLogger() logging.Logger {
	if b.logger == nil {
		b.logger = logging.Default()
	}
	return b.logger
}

// HasExtension reports whether filename ends with one of exts, ignoring case.
// exts include the dot (".qfx").
func HasExtension(filename string, exts ...string) bool {
	if filename == "" {
		return false
	}
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// FirstLine returns content up to the first newline, without a trailing \r.
func FirstLine(content string) string {
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		content = content[:i]
	}
	return strings.TrimSuffix(content, "\r")
}
