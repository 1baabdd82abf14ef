package audit

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/isapool/internal/isajson"
	flagutils "github.com/temirov/isapool/internal/utils/flags"
	pathutils "github.com/temirov/isapool/internal/utils/path"
)

const (
	commandUseConstant                 = "pooling [investigation files...]"
	commandShortDescriptionConstant    = "Detect possible process pooling in investigation workflows"
	commandLongDescriptionConstant     = "pooling loads ISA-JSON or YAML investigation documents, inspects every study and assay workflow graph, and reports processes that receive more than one input."
	flagFormatNameConstant             = "format"
	flagFormatDescriptionConstant      = "Report format"
	flagParallelismNameConstant        = "parallelism"
	flagParallelismDescriptionConstant = "Number of workflow graphs inspected concurrently"
	flagDebugNameConstant              = "debug"
	flagDebugDescriptionConstant       = "Print each investigation file to standard error before it is checked"
	commandFailureTemplateConstant     = "pooling audit failed: %w"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the pooling cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	Loader                InvestigationLoader
	AuditorFactory        AuditorFactory
	PathSanitizer         *pathutils.InputPathSanitizer
}

// Build constructs the cobra command for pooling audits.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	defaults := DefaultCommandConfiguration()
	var formatSelection string
	flagutils.AddChoiceFlag(command.Flags(), &formatSelection, flagFormatNameConstant, defaults.Format, SupportedReportFormats(), flagFormatDescriptionConstant)
	command.Flags().Int(flagParallelismNameConstant, defaults.Parallelism, flagParallelismDescriptionConstant)
	command.Flags().Bool(flagDebugNameConstant, defaults.Debug, flagDebugDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	logger := builder.resolveLogger()

	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	loader := builder.Loader
	if loader == nil {
		loader = isajson.NewLoader(logger)
	}

	service := NewService(loader, builder.AuditorFactory, command.OutOrStdout(), command.ErrOrStderr(), logger)
	if runError := service.Run(command.Context(), options); runError != nil {
		return fmt.Errorf(commandFailureTemplateConstant, runError)
	}
	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (CommandOptions, error) {
	configuration := builder.resolveConfiguration()

	formatValue := configuration.Format
	if command.Flags().Changed(flagFormatNameConstant) {
		formatValue = command.Flags().Lookup(flagFormatNameConstant).Value.String()
	}
	reportFormat, formatError := ParseReportFormat(formatValue)
	if formatError != nil {
		return CommandOptions{}, formatError
	}

	parallelism := configuration.Parallelism
	if command.Flags().Changed(flagParallelismNameConstant) {
		parallelism, _ = command.Flags().GetInt(flagParallelismNameConstant)
	}

	debugOutput := configuration.Debug
	if command.Flags().Changed(flagDebugNameConstant) {
		debugOutput, _ = command.Flags().GetBool(flagDebugNameConstant)
	}

	inputs := arguments
	if len(sanitizeInputs(inputs)) == 0 {
		inputs = configuration.Inputs
	}
	inputs = builder.resolvePathSanitizer().Sanitize(inputs)
	if len(inputs) == 0 {
		if helpError := displayCommandHelp(command); helpError != nil {
			return CommandOptions{}, helpError
		}
		return CommandOptions{}, ErrInputsMissing
	}

	return CommandOptions{
		Inputs:      inputs,
		Format:      reportFormat,
		Parallelism: parallelism,
		DebugOutput: debugOutput,
	}, nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolvePathSanitizer() *pathutils.InputPathSanitizer {
	if builder.PathSanitizer == nil {
		return pathutils.NewInputPathSanitizer()
	}
	return builder.PathSanitizer
}

func displayCommandHelp(command *cobra.Command) error {
	if command == nil {
		return nil
	}
	return command.Help()
}
