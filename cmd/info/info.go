// Package info implements the info command
package info

import (
	"encoding/json"
	"fmt"
	"io"

	"fjacquet/bank-statement/cmd/common"
	"fjacquet/bank-statement/cmd/root"
	internalcommon "fjacquet/bank-statement/internal/common"
	"fjacquet/bank-statement/internal/factory"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the info command
var Cmd = &cobra.Command{
	Use:   "info",
	Short: "Show the header of a QFX/OFX statement",
	Long: `Show the statement header of a QFX/OFX file: institution, account, currency,
statement period, ledger balance and transaction count.

The header is printed as YAML, or as JSON with --output-format json.

Example:
  bank-statement info -i export.qfx`,
	RunE: infoFunc,
}

func infoFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	return Run(c.GetDispatcher(), root.SharedFlags.Input, root.SharedFlags.Format,
		c.GetOutputOptions().Format, cmd.OutOrStdout())
}

// Run prints the statement header of input.
func Run(d *factory.Dispatcher, input, explicitFormat string, format internalcommon.OutputFormat, out io.Writer) error {
	content, err := common.ReadInput(input)
	if err != nil {
		return err
	}
	fileFormat, err := common.ResolveFormat(d, explicitFormat, input, content)
	if err != nil {
		return err
	}
	info, err := d.StatementInfo(fileFormat, content)
	if err != nil {
		return err
	}

	if format == internalcommon.OutputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(info); err != nil {
		return fmt.Errorf("error writing YAML data: %w", err)
	}
	return enc.Close()
}
