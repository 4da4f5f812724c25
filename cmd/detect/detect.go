// Package detect implements the detect command
package detect

import (
	"fmt"
	"io"
	"path/filepath"

	"fjacquet/bank-statement/cmd/common"
	"fjacquet/bank-statement/cmd/root"
	"fjacquet/bank-statement/internal/factory"
	"fjacquet/bank-statement/internal/logging"
	"fjacquet/bank-statement/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the detect command
var Cmd = &cobra.Command{
	Use:   "detect [files...]",
	Short: "Report the format of statement files",
	Long: `Report the detected format (qfx or csv) of each statement file.

Files are taken from the arguments, or from --input when none are given.

Example:
  bank-statement detect export.qfx history.csv`,
	RunE: detectFunc,
}

func detectFunc(cmd *cobra.Command, args []string) error {
	files := args
	if len(files) == 0 && root.SharedFlags.Input != "" {
		files = []string{root.SharedFlags.Input}
	}
	c := root.GetContainer()
	return Run(c.GetDispatcher(), c.GetLogger(), files, cmd.OutOrStdout())
}

// Run prints "<file>: <format>" for every file. Files that cannot be read
// or recognized are reported inline and make Run fail once all are done.
func Run(d *factory.Dispatcher, logger logging.Logger, files []string, out io.Writer) error {
	if len(files) == 0 {
		return fmt.Errorf("no files given")
	}

	failed := 0
	for _, file := range files {
		format, err := detectFile(d, file)
		if err == nil {
			fmt.Fprintf(out, "%s: %s\n", file, format)
			continue
		}
		failed++
		logger.WithError(err).Debug("Detection failed", logging.F(logging.FieldFile, file))
		fmt.Fprintf(out, "%s: error: %v\n", file, err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) not recognized", failed, len(files))
	}
	return nil
}

func detectFile(d *factory.Dispatcher, file string) (models.FileFormat, error) {
	content, err := common.ReadInput(file)
	if err != nil {
		return "", err
	}
	return d.Detect(filepath.Base(file), content)
}
