// Package utils holds the logging and configuration plumbing shared by the isapool commands.
//
// LoggerFactory builds zap loggers and ConfigurationLoader layers embedded defaults,
// configuration files and environment variables through Viper.
package utils
