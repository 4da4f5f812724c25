// Package csvparser reads header-driven CSV statement exports with the
// columns Date, Type, Description, Amount, FITID and Memo.
package csvparser

import (
	"encoding/csv"
	"fmt"
	"strings"

	"fjacquet/bank-statement/internal/logging"
	"fjacquet/bank-statement/internal/models"
	"fjacquet/bank-statement/internal/parser"
	"fjacquet/bank-statement/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// ReasonDeserialize is reported when rows cannot be mapped onto columns.
const ReasonDeserialize = "CSV deserialize error"

const utf8BOM = "\ufeff"

// Parser is the CSV statement parser.
type Parser struct {
	parser.BaseParser
	delimiter rune
}

// NewParser returns a comma-delimited CSV parser logging through logger.
func NewParser(logger logging.Logger) *Parser {
	return &Parser{
		BaseParser: parser.NewBaseParser(logger),
		delimiter:  ',',
	}
}

// SetDelimiter changes the field delimiter used by Parse and ValidateFormat.
func (p *Parser) SetDelimiter(delim rune) {
	if delim != 0 {
		p.delimiter = delim
	}
}

// Delimiter returns the configured field delimiter.
func (p *Parser) Delimiter() rune {
	return p.delimiter
}

func (p *Parser) Name() string {
	return string(models.FormatCSV)
}

// IsSupported requires the first line to mention both Date and Amount.
// When a filename is given it must also carry a .csv extension.
func (p *Parser) IsSupported(filename, content string) bool {
	first := parser.FirstLine(content)
	looksLikeCSV := strings.Contains(first, models.CsvColumnDate) && strings.Contains(first, models.CsvColumnAmount)
	if filename != "" {
		return parser.HasExtension(filename, ".csv") && looksLikeCSV
	}
	return looksLikeCSV
}

// Parse reads every data row in order. A row that cannot be deserialized or
// whose amount is not an exact decimal fails the whole parse.
func (p *Parser) Parse(content string) ([]models.CsvTransaction, error) {
	content = strings.TrimPrefix(content, utf8BOM)
	if strings.TrimSpace(content) == "" {
		return []models.CsvTransaction{}, nil
	}

	header, err := p.readHeader(content)
	if err != nil {
		return nil, parsererror.NewParseError(p.Name(), ReasonDeserialize, err)
	}
	if missing := missingColumns(header); len(missing) > 0 {
		return nil, parsererror.NewParseError(p.Name(), ReasonDeserialize,
			fmt.Errorf("missing column(s): %s", strings.Join(missing, ", ")))
	}

	var rows []models.CsvRow
	if err := gocsv.UnmarshalCSV(p.newReader(content), &rows); err != nil {
		return nil, parsererror.NewParseError(p.Name(), ReasonDeserialize, err)
	}

	transactions := make([]models.CsvTransaction, 0, len(rows))
	for i, row := range rows {
		txn, err := models.NewCsvTransaction(row)
		if err != nil {
			p.GetLogger().Debug("Rejected CSV row",
				logging.Field{Key: logging.FieldParser, Value: p.Name()},
				logging.Field{Key: logging.FieldIndex, Value: i + 1})
			return nil, err
		}
		transactions = append(transactions, txn)
	}

	p.GetLogger().Debug("Parsed CSV statement",
		logging.Field{Key: logging.FieldParser, Value: p.Name()},
		logging.Field{Key: logging.FieldDelimiter, Value: string(p.delimiter)},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions, nil
}

// ValidateFormat checks that the header carries the required columns and
// that at least one data row follows.
func (p *Parser) ValidateFormat(content string) (bool, error) {
	content = strings.TrimPrefix(content, utf8BOM)
	records, err := p.newReader(content).ReadAll()
	if err != nil {
		p.GetLogger().Debug("CSV validation failed",
			logging.Field{Key: logging.FieldParser, Value: p.Name()},
			logging.Field{Key: logging.FieldReason, Value: err.Error()})
		return false, nil
	}
	if len(records) < 2 {
		return false, nil
	}
	if missing := missingColumns(records[0]); len(missing) > 0 {
		p.GetLogger().Debug("CSV header is missing required columns",
			logging.Field{Key: logging.FieldParser, Value: p.Name()},
			logging.Field{Key: logging.FieldReason, Value: strings.Join(missing, ",")})
		return false, nil
	}
	return true, nil
}

func (p *Parser) newReader(content string) *csv.Reader {
	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = p.delimiter
	return reader
}

func (p *Parser) readHeader(content string) ([]string, error) {
	return p.newReader(parser.FirstLine(content)).Read()
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = true
	}
	var missing []string
	for _, col := range models.CsvRequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}
