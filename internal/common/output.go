// Package common renders unified transactions in the supported output
// formats: CSV, JSON and YAML.
package common

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fjacquet/bank-statement/internal/currencyutils"
	"fjacquet/bank-statement/internal/dateutils"
	"fjacquet/bank-statement/internal/fileutils"
	"fjacquet/bank-statement/internal/models"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// OutputFormat selects the rendering of WriteTransactions.
type OutputFormat string

const (
	OutputCSV  OutputFormat = "csv"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// ParseOutputFormat maps "csv", "json", "yaml" or "yml" to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return OutputCSV, nil
	case "json":
		return OutputJSON, nil
	case "yaml", "yml":
		return OutputYAML, nil
	}
	return "", fmt.Errorf("unknown output format: %s", s)
}

// Extension is the file extension written for the format.
func (f OutputFormat) Extension() string {
	return "." + string(f)
}

// OutputOptions controls rendering.
type OutputOptions struct {
	Format     OutputFormat
	Delimiter  rune
	DateLayout string
}

// DefaultOutputOptions renders comma-separated CSV with ISO dates.
func DefaultOutputOptions() OutputOptions {
	return OutputOptions{
		Format:     OutputCSV,
		Delimiter:  ',',
		DateLayout: dateutils.DateLayoutISO,
	}
}

// TransactionRecord is the flat, textual form of a Transaction. Amounts keep
// the scale they were read with.
type TransactionRecord struct {
	Date   string `csv:"Date" json:"date" yaml:"date"`
	Type   string `csv:"Type" json:"type" yaml:"type"`
	Amount string `csv:"Amount" json:"amount" yaml:"amount"`
	Payee  string `csv:"Payee" json:"payee,omitempty" yaml:"payee,omitempty"`
	FITID  string `csv:"FITID" json:"fitid,omitempty" yaml:"fitid,omitempty"`
	Status string `csv:"Status" json:"status,omitempty" yaml:"status,omitempty"`
	Memo   string `csv:"Memo" json:"memo,omitempty" yaml:"memo,omitempty"`
}

// NewTransactionRecords flattens transactions, formatting dates with layout.
func NewTransactionRecords(transactions []models.Transaction, layout string) []TransactionRecord {
	records := make([]TransactionRecord, 0, len(transactions))
	for _, t := range transactions {
		records = append(records, TransactionRecord{
			Date:   dateutils.FormatDate(t.Date, layout),
			Type:   t.TransactionType,
			Amount: currencyutils.FormatExact(t.Amount),
			Payee:  t.Payee,
			FITID:  t.FITID,
			Status: t.Status,
			Memo:   t.Memo,
		})
	}
	return records
}

// WriteTransactions renders transactions to w.
func WriteTransactions(w io.Writer, transactions []models.Transaction, opts OutputOptions) error {
	records := NewTransactionRecords(transactions, opts.DateLayout)

	switch opts.Format {
	case OutputCSV, "":
		csvWriter := csv.NewWriter(w)
		if opts.Delimiter != 0 {
			csvWriter.Comma = opts.Delimiter
		}
		if err := gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
			return fmt.Errorf("error writing CSV data: %w", err)
		}
		return nil
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("error writing JSON data: %w", err)
		}
		return nil
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("error writing YAML data: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format: %s", opts.Format)
}

// WriteTransactionsToFile renders transactions into path, creating parent
// directories as needed.
func WriteTransactionsToFile(path string, transactions []models.Transaction, opts OutputOptions) (err error) {
	file, err := fileutils.CreateFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing %s: %w", path, closeErr)
		}
	}()
	return WriteTransactions(file, transactions, opts)
}
