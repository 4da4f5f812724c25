// Package batch converts every statement in a directory into the configured
// output format.
package batch

import (
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/bank-statement/internal/common"
	"fjacquet/bank-statement/internal/factory"
	"fjacquet/bank-statement/internal/fileutils"
	"fjacquet/bank-statement/internal/logging"
	"fjacquet/bank-statement/internal/models"
)

// FileResult is the outcome for one input file. Err is set when the file was
// skipped; no output is written in that case.
type FileResult struct {
	Input     string            `json:"input"`
	Output    string            `json:"output,omitempty"`
	Format    models.FileFormat `json:"format,omitempty"`
	Count     int               `json:"count"`
	DateRange DateRange         `json:"date_range"`
	Err       error             `json:"-"`
}

// Succeeded reports whether the file was converted.
func (r FileResult) Succeeded() bool {
	return r.Err == nil
}

// Report summarizes a directory conversion, one result per input file in
// name order.
type Report struct {
	Files []FileResult `json:"files"`
}

// Succeeded counts converted files.
func (r Report) Succeeded() int {
	n := 0
	for _, f := range r.Files {
		if f.Succeeded() {
			n++
		}
	}
	return n
}

// Failed counts skipped files.
func (r Report) Failed() int {
	return len(r.Files) - r.Succeeded()
}

// DateRange spans every converted transaction.
func (r Report) DateRange() DateRange {
	var dr DateRange
	for _, f := range r.Files {
		if f.Succeeded() {
			dr = dr.Merge(f.DateRange)
		}
	}
	return dr
}

// Converter turns statements into output files.
type Converter struct {
	dispatcher *factory.Dispatcher
	output     common.OutputOptions
	validate   bool
	logger     logging.Logger
}

// NewConverter creates a Converter. With validate set, each file must also
// pass the strict format check before it is parsed.
func NewConverter(dispatcher *factory.Dispatcher, output common.OutputOptions, validate bool, logger logging.Logger) *Converter {
	if logger == nil {
		logger = logging.Default()
	}
	return &Converter{
		dispatcher: dispatcher,
		output:     output,
		validate:   validate,
		logger:     logger,
	}
}

// ConvertDirectory converts the files directly inside inputDir, writing
// "<name><ext>" for each into outputDir. A file that cannot be detected,
// validated, parsed or written is recorded in the report and skipped. The
// returned error covers only failures that stop the whole run.
func (c *Converter) ConvertDirectory(inputDir, outputDir string) (Report, error) {
	var report Report

	if !fileutils.DirectoryExists(inputDir) {
		return report, fmt.Errorf("input directory does not exist: %s", inputDir)
	}
	files, err := fileutils.ListFiles(inputDir)
	if err != nil {
		return report, err
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return report, err
	}

	used := make(map[string]string, len(files))
	for _, file := range files {
		if strings.HasPrefix(filepath.Base(file), ".") {
			continue
		}
		result := c.convertFile(file, outputDir, used)
		report.Files = append(report.Files, result)

		log := c.logger.WithFields(
			logging.F(logging.FieldInputFile, file),
			logging.F(logging.FieldFormat, result.Format))
		if result.Err != nil {
			log.WithError(result.Err).Warn("Skipping file")
			continue
		}
		log.Info("Converted file",
			logging.F(logging.FieldOutputFile, result.Output),
			logging.F(logging.FieldCount, result.Count))
	}

	c.logger.Info("Batch conversion finished",
		logging.F("succeeded", report.Succeeded()),
		logging.F("failed", report.Failed()))
	return report, nil
}

func (c *Converter) convertFile(file, outputDir string, used map[string]string) FileResult {
	result := FileResult{Input: file}

	content, err := fileutils.ReadText(file)
	if err != nil {
		result.Err = err
		return result
	}

	format, err := c.dispatcher.Detect(filepath.Base(file), content)
	if err != nil {
		result.Err = err
		return result
	}
	result.Format = format

	if c.validate {
		if err := c.dispatcher.EnsureValid(format, file, content); err != nil {
			result.Err = err
			return result
		}
	}

	transactions, err := c.dispatcher.Parse(format, content)
	if err != nil {
		result.Err = err
		return result
	}

	output := filepath.Join(outputDir, fileutils.ReplaceExtension(file, c.output.Format.Extension()))
	if previous, taken := used[output]; taken {
		result.Err = fmt.Errorf("output %s already written for %s", output, previous)
		return result
	}

	if err := common.WriteTransactionsToFile(output, transactions, c.output); err != nil {
		result.Err = err
		return result
	}
	used[output] = file

	result.Output = output
	result.Count = len(transactions)
	result.DateRange = DateRangeOf(transactions)
	return result
}
