// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"fjacquet/bank-statement/internal/config"
	"fjacquet/bank-statement/internal/container"
	"fjacquet/bank-statement/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input        string
	Output       string
	Format       string
	OutputFormat string
	Validate     bool
	ConfigFile   string
	LogLevel     string
}

var (
	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bank-statement",
		Short: "A CLI tool to read QFX/OFX and CSV bank statements.",
		Long: `bank-statement is a CLI tool that reads QFX/OFX and CSV bank statement exports,
detects their format and normalizes every entry into one transaction layout,
written back out as CSV, JSON or YAML.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appContainer == nil {
				return nil
			}
			return appContainer.Close()
		},
	}

	// SharedFlags holds the values of the persistent flags.
	SharedFlags = CommonFlags{}

	appContainer *container.Container
	initOnce     sync.Once
)

// Init initializes the root command and all flags. It is safe to call more
// than once.
func Init() {
	initOnce.Do(func() {
		flags := Cmd.PersistentFlags()
		flags.StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
		flags.StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (stdout when empty)")
		flags.StringVarP(&SharedFlags.Format, "format", "f", "", "Input format (qfx, ofx or csv); detected when empty")
		flags.StringVar(&SharedFlags.OutputFormat, "output-format", "", "Output format (csv, json or yaml)")
		flags.BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
		flags.StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default searches $HOME/.bank-statement, .bank-statement and .)")
		flags.StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	})
}

// GetContainer returns the container built for the running command.
func GetContainer() *container.Container {
	return appContainer
}

// GetLogger returns the configured logger, or the default one before
// setup has run.
func GetLogger() logging.Logger {
	if appContainer == nil {
		return logging.Default()
	}
	return appContainer.GetLogger()
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(SharedFlags)
	if err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	appContainer = c
	return nil
}

// LoadConfig reads the configuration and applies the flag overrides on top.
func LoadConfig(flags CommonFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.ConfigFile != "" {
		cfg, err = config.InitializeConfigFromFile(flags.ConfigFile)
	} else {
		cfg, err = config.InitializeConfig()
	}
	if err != nil {
		return nil, err
	}

	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.OutputFormat != "" {
		cfg.Output.Format = flags.OutputFormat
	}
	if flags.Validate {
		cfg.Parse.Validate = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
