// Package cli implements the readme command line tool.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/getmentor/readme-generator/pkg/logger"
)

// ErrValidationFailed is returned after the field errors have been printed
var ErrValidationFailed = errors.New("validation failed")

// Execute builds the root command and runs it
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command with its subcommands.
func NewRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "readme",
		Short:         "Generate a GitHub profile README from a few fields",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// stdout may carry the document, so logs go to stderr
			return logger.Initialize(logger.Config{
				Level:       logLevel,
				Environment: "development",
				Output:      os.Stderr,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug|info|warn|error)")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newValidateCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}
