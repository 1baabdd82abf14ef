// Package cli constructs the isapool command-line interface: the Cobra root command,
// layered configuration, structured logging and the pooling subcommand.
package cli
