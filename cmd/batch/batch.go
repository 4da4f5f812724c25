// Package batch handles batch processing of files
package batch

import (
	"fmt"
	"io"

	"fjacquet/bank-statement/cmd/root"
	internalbatch "fjacquet/bank-statement/internal/batch"

	"github.com/spf13/cobra"
)

var (
	inputDir  string
	outputDir string
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process files from a directory",
	Long: `Batch process files from an input directory and output them to another directory.

Every file directly inside the input directory is detected, parsed and written
to the output directory under the same name with the output format's extension.
Files that cannot be converted are reported and skipped.

Example:
  bank-statement batch --input-dir exports/ --output-dir converted/`,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().StringVar(&inputDir, "input-dir", "", "Directory holding the statements (defaults to --input)")
	Cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory receiving the converted files (defaults to --output)")
}

func batchFunc(cmd *cobra.Command, args []string) error {
	in, out := inputDir, outputDir
	if in == "" {
		in = root.SharedFlags.Input
	}
	if out == "" {
		out = root.SharedFlags.Output
	}
	if in == "" || out == "" {
		return fmt.Errorf("input and output directories must be specified")
	}

	report, err := root.GetContainer().NewBatchConverter().ConvertDirectory(in, out)
	if err != nil {
		return fmt.Errorf("error during batch conversion: %w", err)
	}
	PrintReport(cmd.OutOrStdout(), report)
	return nil
}

// PrintReport writes one line per file followed by a summary.
func PrintReport(w io.Writer, report internalbatch.Report) {
	for _, f := range report.Files {
		if f.Err != nil {
			fmt.Fprintf(w, "FAILED  %s: %v\n", f.Input, f.Err)
			continue
		}
		fmt.Fprintf(w, "OK      %s -> %s (%s, %d transactions, %s)\n",
			f.Input, f.Output, f.Format, f.Count, f.DateRange)
	}
	fmt.Fprintf(w, "Batch processing completed. %d converted, %d failed.\n",
		report.Succeeded(), report.Failed())
}
