// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"

	"fjacquet/bank-statement/internal/common"
	"fjacquet/bank-statement/internal/container"
	"fjacquet/bank-statement/internal/factory"
	"fjacquet/bank-statement/internal/fileutils"
	"fjacquet/bank-statement/internal/logging"
	"fjacquet/bank-statement/internal/models"
	"fjacquet/bank-statement/internal/parsererror"
)

// ProcessOptions describes one conversion.
type ProcessOptions struct {
	Input    string
	Output   string
	Format   string
	Validate bool
}

// ReadInput loads the statement at path.
func ReadInput(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: use --input", parsererror.ErrMissingInput)
	}
	return fileutils.ReadText(path)
}

// ResolveFormat returns the explicit format when one is given and detects it
// otherwise.
func ResolveFormat(d *factory.Dispatcher, explicit, filename, content string) (models.FileFormat, error) {
	if explicit != "" {
		return models.ParseFileFormat(explicit)
	}
	return d.Detect(filename, content)
}

// ProcessFile converts one statement. Transactions go to opts.Output, or to
// stdout when no output file is set. It returns the number of transactions
// written.
func ProcessFile(c *container.Container, opts ProcessOptions, stdout io.Writer) (int, error) {
	log := c.GetLogger().WithField(logging.FieldInputFile, opts.Input)
	d := c.GetDispatcher()

	content, err := ReadInput(opts.Input)
	if err != nil {
		return 0, err
	}

	format, err := ResolveFormat(d, opts.Format, opts.Input, content)
	if err != nil {
		return 0, err
	}

	if opts.Validate {
		log.Debug("Validating format...", logging.F(logging.FieldFormat, format))
		if err := d.EnsureValid(format, opts.Input, content); err != nil {
			return 0, err
		}
	}

	transactions, err := d.Parse(format, content)
	if err != nil {
		return 0, err
	}

	if opts.Output == "" {
		err = common.WriteTransactions(stdout, transactions, c.GetOutputOptions())
	} else {
		err = common.WriteTransactionsToFile(opts.Output, transactions, c.GetOutputOptions())
	}
	if err != nil {
		return 0, err
	}

	log.Info("Conversion completed successfully",
		logging.F(logging.FieldFormat, format),
		logging.F(logging.FieldCount, len(transactions)),
		logging.F(logging.FieldOutputFile, opts.Output))
	return len(transactions), nil
}
