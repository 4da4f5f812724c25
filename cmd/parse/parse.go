// Package parse implements the parse command
package parse

import (
	"fjacquet/bank-statement/cmd/common"
	"fjacquet/bank-statement/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a statement into unified transactions",
	Long: `Parse a QFX/OFX or CSV statement and write its transactions in the unified layout.

The format is detected from the content and the file name unless --format is given.
Output goes to stdout unless --output is set; --output-format selects CSV, JSON or YAML.

Example:
  bank-statement parse -i export.qfx -o transactions.csv
  bank-statement parse -i export.csv --output-format json`,
	RunE: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	_, err := common.ProcessFile(c, common.ProcessOptions{
		Input:    root.SharedFlags.Input,
		Output:   root.SharedFlags.Output,
		Format:   root.SharedFlags.Format,
		Validate: c.GetConfig().Parse.Validate,
	}, cmd.OutOrStdout())
	return err
}
