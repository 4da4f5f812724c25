// Package statement is the public entry point for reading bank statements.
//
// A ParserBuilder collects the input (raw content, a file path, or both),
// an optional explicit format and a logger, then parses into unified
// Transactions, into the format-specific records, or into any caller type
// that implements FromParsed:
//
//	txs, err := statement.NewParserBuilder().
//		Filename("export.qfx").
//		Parse()
package statement

import (
	"fjacquet/bank-statement/internal/factory"
	"fjacquet/bank-statement/internal/fileutils"
	"fjacquet/bank-statement/internal/logging"
	"fjacquet/bank-statement/internal/models"
	"fjacquet/bank-statement/internal/parsererror"
)

// Re-exported data model.
type (
	Transaction       = models.Transaction
	ParsedTransaction = models.ParsedTransaction
	QfxTransaction    = models.QfxTransaction
	CsvTransaction    = models.CsvTransaction
	QfxDate           = models.QfxDate
	CsvDate           = models.CsvDate
	FileFormat        = models.FileFormat
	StatementInfo     = models.StatementInfo

	// ParsedConverter is satisfied by *T when T has a
	// FromParsed(ParsedTransaction) error method.
	ParsedConverter[T any] = models.ParsedConverter[T]

	Logger = logging.Logger
	Field  = logging.Field
)

const (
	FormatQFX = models.FormatQFX
	FormatCSV = models.FormatCSV
)

// Error kinds, for errors.Is.
var (
	ErrUnsupportedFormat = parsererror.ErrUnsupportedFormat
	ErrParseFailed       = parsererror.ErrParseFailed
	ErrInvalidAmount     = parsererror.ErrInvalidAmount
	ErrMissingInput      = parsererror.ErrMissingInput
	ErrInvalidDate       = parsererror.ErrInvalidDate
	ErrQfxDateInvalid    = parsererror.ErrQfxDateInvalid
	ErrCsvDateInvalid    = parsererror.ErrCsvDateInvalid
	ErrReadContent       = parsererror.ErrReadContent
)

// ParserBuilder configures a single parse. The zero value is not usable;
// start from NewParserBuilder.
type ParserBuilder struct {
	content   string
	filename  string
	format    FileFormat
	logger    logging.Logger
	delimiter rune
}

// NewParserBuilder returns a builder with no input, automatic format
// detection and the default logger.
func NewParserBuilder() *ParserBuilder {
	return &ParserBuilder{}
}

// Content sets the statement text. Empty content counts as not supplied.
func (b *ParserBuilder) Content(content string) *ParserBuilder {
	b.content = content
	return b
}

// Filename sets the statement path. It is read when no content is set and
// always takes part in format detection.
func (b *ParserBuilder) Filename(filename string) *ParserBuilder {
	b.filename = filename
	return b
}

// Format skips detection and parses as format.
func (b *ParserBuilder) Format(format FileFormat) *ParserBuilder {
	b.format = format
	return b
}

// Logger replaces the default logger.
func (b *ParserBuilder) Logger(logger Logger) *ParserBuilder {
	b.logger = logger
	return b
}

// CSVDelimiter sets the field separator for CSV input.
func (b *ParserBuilder) CSVDelimiter(delimiter rune) *ParserBuilder {
	b.delimiter = delimiter
	return b
}

// Parse returns unified transactions in statement order.
func (b *ParserBuilder) Parse() ([]Transaction, error) {
	return ParseInto[Transaction](b)
}

// ParseRaw returns the format-specific records without resolving dates.
func (b *ParserBuilder) ParseRaw() ([]ParsedTransaction, error) {
	d, format, content, err := b.resolve()
	if err != nil {
		return nil, err
	}
	return d.ParseRaw(format, content)
}

// Detect resolves the input and reports its format without parsing.
func (b *ParserBuilder) Detect() (FileFormat, error) {
	_, format, _, err := b.resolve()
	return format, err
}

// ParseInto parses into the caller's own type. Conversion stops at the
// first record FromParsed rejects.
func ParseInto[T any, PT models.ParsedConverter[T]](b *ParserBuilder) ([]T, error) {
	d, format, content, err := b.resolve()
	if err != nil {
		return nil, err
	}
	return factory.ParseInto[T, PT](d, format, content)
}

// resolve loads the content and picks the format. The file is read before
// detection so that detection always sees the content.
func (b *ParserBuilder) resolve() (*factory.Dispatcher, FileFormat, string, error) {
	logger := b.logger
	if logger == nil {
		logger = logging.Default()
	}

	var opts []factory.Option
	if b.delimiter != 0 {
		opts = append(opts, factory.WithCSVDelimiter(b.delimiter))
	}
	d := factory.NewDispatcher(logger, opts...)

	content := b.content
	if content == "" {
		if b.filename == "" {
			return nil, "", "", parsererror.ErrMissingInput
		}
		text, err := fileutils.ReadText(b.filename)
		if err != nil {
			return nil, "", "", err
		}
		content = text
	}

	if b.format != "" {
		format, err := models.ParseFileFormat(string(b.format))
		if err != nil {
			return nil, "", "", err
		}
		return d, format, content, nil
	}

	format, err := d.Detect(b.filename, content)
	if err != nil {
		return nil, "", "", err
	}
	return d, format, content, nil
}
