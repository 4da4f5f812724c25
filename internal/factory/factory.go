// Package factory detects statement formats and dispatches parsing to the
// matching format parser.
package factory

import (
	"fmt"

	"fjacquet/bank-statement/internal/csvparser"
	"fjacquet/bank-statement/internal/logging"
	"fjacquet/bank-statement/internal/models"
	"fjacquet/bank-statement/internal/parser"
	"fjacquet/bank-statement/internal/parsererror"
	"fjacquet/bank-statement/internal/qfxparser"
)

// Dispatcher owns one parser per supported format.
type Dispatcher struct {
	logger logging.Logger
	qfx    *qfxparser.Parser
	csv    *csvparser.Parser
}

// Option customizes a Dispatcher.
type Option func(*Dispatcher)

// WithCSVDelimiter sets the field delimiter of the CSV parser.
func WithCSVDelimiter(delim rune) Option {
	return func(d *Dispatcher) {
		d.csv.SetDelimiter(delim)
	}
}

// NewDispatcher builds a dispatcher whose parsers log through logger. A nil
// logger selects the default logger.
func NewDispatcher(logger logging.Logger, opts ...Option) *Dispatcher {
	if logger == nil {
		logger = logging.Default()
	}
	d := &Dispatcher{
		logger: logger,
		qfx:    qfxparser.NewParser(logger),
		csv:    csvparser.NewParser(logger),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetLogger replaces the logger of the dispatcher and its parsers.
func (d *Dispatcher) SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	d.logger = logger
	d.qfx.SetLogger(logger)
	d.csv.SetLogger(logger)
}

// Detect identifies the format of a statement. Either argument may be empty.
//
// Content detectors run first, QFX before CSV. Without a content match only
// the .qfx/.ofx extensions are trusted; a .csv extension alone never selects
// CSV because it says nothing about the columns.
func (d *Dispatcher) Detect(filename, content string) (models.FileFormat, error) {
	if content != "" {
		if d.qfx.IsSupported(filename, content) {
			d.logDetected(models.FormatQFX, filename, "content")
			return models.FormatQFX, nil
		}
		if d.csv.IsSupported(filename, content) {
			d.logDetected(models.FormatCSV, filename, "content")
			return models.FormatCSV, nil
		}
	}

	if parser.HasExtension(filename, ".qfx", ".ofx") {
		d.logDetected(models.FormatQFX, filename, "extension")
		return models.FormatQFX, nil
	}

	d.logger.Debug("No statement format matched",
		logging.Field{Key: logging.FieldFile, Value: filename})
	return "", fmt.Errorf("%w: %s", parsererror.ErrUnsupportedFormat, describeInput(filename))
}

func (d *Dispatcher) logDetected(format models.FileFormat, filename, by string) {
	d.logger.Debug("Detected statement format",
		logging.Field{Key: logging.FieldFormat, Value: format},
		logging.Field{Key: logging.FieldFile, Value: filename},
		logging.Field{Key: logging.FieldReason, Value: by})
}

func describeInput(filename string) string {
	if filename == "" {
		return "no format matched the content"
	}
	return fmt.Sprintf("no format matched %q", filename)
}

// ParseRaw parses content with the parser of format, without resolving dates.
func (d *Dispatcher) ParseRaw(format models.FileFormat, content string) ([]models.ParsedTransaction, error) {
	switch format {
	case models.FormatQFX:
		transactions, err := d.qfx.Parse(content)
		if err != nil {
			return nil, err
		}
		return toParsed(transactions), nil
	case models.FormatCSV:
		transactions, err := d.csv.Parse(content)
		if err != nil {
			return nil, err
		}
		return toParsed(transactions), nil
	default:
		return nil, fmt.Errorf("%w: %q", parsererror.ErrUnsupportedFormat, format)
	}
}

func toParsed[T models.ParsedTransaction](transactions []T) []models.ParsedTransaction {
	out := make([]models.ParsedTransaction, len(transactions))
	for i, t := range transactions {
		out[i] = t
	}
	return out
}

// Parse parses content into unified transactions.
func (d *Dispatcher) Parse(format models.FileFormat, content string) ([]models.Transaction, error) {
	return ParseInto[models.Transaction](d, format, content)
}

// DetectAndParse detects the format of content and parses it.
func (d *Dispatcher) DetectAndParse(filename, content string) (models.FileFormat, []models.Transaction, error) {
	format, err := d.Detect(filename, content)
	if err != nil {
		return "", nil, err
	}
	transactions, err := d.Parse(format, content)
	if err != nil {
		return format, nil, err
	}
	return format, transactions, nil
}

// ParseInto parses content and converts every record into T, stopping at
// the first record that fails to convert.
func ParseInto[T any, PT models.ParsedConverter[T]](d *Dispatcher, format models.FileFormat, content string) ([]T, error) {
	parsed, err := d.ParseRaw(format, content)
	if err != nil {
		return nil, err
	}
	out, err := models.ConvertAll[T, PT](parsed)
	if err != nil {
		return nil, err
	}
	d.logger.Debug("Converted statement",
		logging.Field{Key: logging.FieldFormat, Value: format},
		logging.Field{Key: logging.FieldCount, Value: len(out)})
	return out, nil
}

// Validate runs the strict conformance check of format's parser.
func (d *Dispatcher) Validate(format models.FileFormat, content string) (bool, error) {
	var v parser.FormatValidator
	switch format {
	case models.FormatQFX:
		v = d.qfx
	case models.FormatCSV:
		v = d.csv
	default:
		return false, fmt.Errorf("%w: %q", parsererror.ErrUnsupportedFormat, format)
	}
	return v.ValidateFormat(content)
}

// EnsureValid is Validate turned into an error: a document failing the
// check yields *parsererror.InvalidFormatError.
func (d *Dispatcher) EnsureValid(format models.FileFormat, filename, content string) error {
	ok, err := d.Validate(format, content)
	if err != nil {
		return err
	}
	if !ok {
		return &parsererror.InvalidFormatError{
			FilePath:             filename,
			ExpectedFormat:       string(format),
			ActualContentSnippet: parsererror.Snippet(content, 40),
			Msg:                  "strict format validation failed",
		}
	}
	return nil
}

// StatementInfo returns the statement header. Only QFX carries one.
func (d *Dispatcher) StatementInfo(format models.FileFormat, content string) (models.StatementInfo, error) {
	if format != models.FormatQFX {
		return models.StatementInfo{}, fmt.Errorf("%w: %s has no statement header", parsererror.ErrUnsupportedFormat, format)
	}
	return d.qfx.StatementInfo(content)
}
