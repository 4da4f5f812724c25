package main

import (
	"fmt"
	"os"

	"fjacquet/bank-statement/cmd/batch"
	"fjacquet/bank-statement/cmd/detect"
	"fjacquet/bank-statement/cmd/info"
	"fjacquet/bank-statement/cmd/parse"
	"fjacquet/bank-statement/cmd/root"
	"fjacquet/bank-statement/cmd/serve"
	"fjacquet/bank-statement/internal/config"
)

func init() {
	// .env must be loaded before the configuration reads the environment.
	config.LoadEnv(nil)

	root.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(detect.Cmd)
	root.Cmd.AddCommand(info.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
