package models

import (
	"time"

	"fjacquet/bank-statement/internal/currencyutils"
	"fjacquet/bank-statement/internal/dateutils"
	"fjacquet/bank-statement/internal/parsererror"

	"github.com/shopspring/decimal"
)

// CsvDate is an unresolved CSV date: YYYY-MM-DD, DD/MM/YYYY or MM/DD/YYYY.
type CsvDate string

// Time resolves the date, trying the layouts in dateutils.CSVFormats order.
func (d CsvDate) Time() (time.Time, error) {
	return dateutils.ParseCSVDate(string(d))
}

// CSV column names.
const (
	CsvColumnDate        = "Date"
	CsvColumnType        = "Type"
	CsvColumnDescription = "Description"
	CsvColumnAmount      = "Amount"
	CsvColumnFITID       = "FITID"
	CsvColumnMemo        = "Memo"
)

// CsvRequiredColumns must be present in every CSV header.
var CsvRequiredColumns = []string{CsvColumnDate, CsvColumnType, CsvColumnAmount}

// CsvRow is one CSV line as read by gocsv.
type CsvRow struct {
	Date        string `csv:"Date"`
	Type        string `csv:"Type"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	FITID       string `csv:"FITID"`
	Memo        string `csv:"Memo"`
}

// CsvTransaction is one validated CSV row.
type CsvTransaction struct {
	Date        CsvDate         `json:"date"`
	TrnType     string          `json:"trn_type"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	FITID       string          `json:"fitid,omitempty"`
	Memo        string          `json:"memo,omitempty"`
}

// NewCsvTransaction validates the amount of row and keeps its date unresolved.
func NewCsvTransaction(row CsvRow) (CsvTransaction, error) {
	amount, err := currencyutils.ParseExactAmount(row.Amount)
	if err != nil {
		return CsvTransaction{}, &parsererror.ParseError{
			Parser: string(FormatCSV),
			Field:  CsvColumnAmount,
			Value:  row.Amount,
			Err:    err,
		}
	}
	return CsvTransaction{
		Date:        CsvDate(row.Date),
		TrnType:     row.Type,
		Description: row.Description,
		Amount:      amount,
		FITID:       row.FITID,
		Memo:        row.Memo,
	}, nil
}
