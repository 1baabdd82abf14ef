package audit

import "strings"

const (
	configurationInputsKeyConstant      = "inputs"
	configurationFormatKeyConstant      = "format"
	configurationParallelismKeyConstant = "parallelism"
	configurationDebugKeyConstant       = "debug"
	configurationKeySeparatorConstant   = "."
	defaultParallelismConstant          = 1
)

// CommandConfiguration captures persistent settings for the pooling command.
type CommandConfiguration struct {
	Inputs      []string `mapstructure:"inputs"`
	Format      string   `mapstructure:"format"`
	Parallelism int      `mapstructure:"parallelism"`
	Debug       bool     `mapstructure:"debug"`
}

// DefaultCommandConfiguration returns baseline configuration values for the pooling command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Inputs:      []string{},
		Format:      string(ReportFormatCSV),
		Parallelism: defaultParallelismConstant,
		Debug:       false,
	}
}

// DefaultConfigurationValues produces Viper defaults for the pooling command under rootKey.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	prefix := rootKey + configurationKeySeparatorConstant
	return map[string]any{
		prefix + configurationInputsKeyConstant:      defaults.Inputs,
		prefix + configurationFormatKeyConstant:      defaults.Format,
		prefix + configurationParallelismKeyConstant: defaults.Parallelism,
		prefix + configurationDebugKeyConstant:       defaults.Debug,
	}
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.Inputs = sanitizeInputs(configuration.Inputs)
	sanitized.Format = strings.ToLower(strings.TrimSpace(configuration.Format))
	if len(sanitized.Format) == 0 {
		sanitized.Format = string(ReportFormatCSV)
	}
	if sanitized.Parallelism < defaultParallelismConstant {
		sanitized.Parallelism = defaultParallelismConstant
	}

	return sanitized
}

func sanitizeInputs(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for index := range raw {
		trimmed := strings.TrimSpace(raw[index])
		if len(trimmed) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmed)
	}
	return sanitized
}
