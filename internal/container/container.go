// Package container provides dependency injection for the bank-statement
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/bank-statement/internal/batch"
	"fjacquet/bank-statement/internal/common"
	"fjacquet/bank-statement/internal/config"
	"fjacquet/bank-statement/internal/factory"
	"fjacquet/bank-statement/internal/logging"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation; fields are private and only reachable
// through getters.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	dispatcher *factory.Dispatcher
	output     common.OutputOptions
}

// NewContainer creates and wires all application dependencies from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	return NewContainerWithLogger(cfg, nil)
}

// NewContainerWithLogger is NewContainer with an injected logger. A nil
// logger is built from the Log section of cfg.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	if logger == nil {
		logger = config.ConfigureLoggingFromConfig(cfg)
	}

	outputFormat, err := common.ParseOutputFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	dispatcher := factory.NewDispatcher(logger, factory.WithCSVDelimiter(cfg.CSVDelimiter()))

	output := common.OutputOptions{
		Format:     outputFormat,
		Delimiter:  cfg.OutputDelimiter(),
		DateLayout: cfg.Output.DateFormat,
	}

	logger.Debug("Container initialized",
		logging.F(logging.FieldFormat, outputFormat),
		logging.F("validate", cfg.Parse.Validate))

	return &Container{
		logger:     logger,
		config:     cfg,
		dispatcher: dispatcher,
		output:     output,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetDispatcher returns the format dispatcher shared by every command.
func (c *Container) GetDispatcher() *factory.Dispatcher {
	return c.dispatcher
}

// GetOutputOptions returns the configured output rendering.
func (c *Container) GetOutputOptions() common.OutputOptions {
	return c.output
}

// NewBatchConverter builds a batch converter on the shared dispatcher.
func (c *Container) NewBatchConverter() *batch.Converter {
	return batch.NewConverter(c.dispatcher, c.output, c.config.Parse.Validate, c.logger)
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
