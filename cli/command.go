package cli

import (
	"io"
	"os"

	"github.com/grovetools/wineconf/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandOptions holds common options for wineconf commands
type CommandOptions struct {
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with the standard flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger returns the component logger adjusted to the command flags.
// With --verbose a logger that was discarding output writes to stderr.
func GetLogger(cmd *cobra.Command, component string, opts ...LoggerOption) *logrus.Entry {
	entry := logging.NewLogger(component)
	logger := entry.Logger

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logrus.DebugLevel)
		if logger.Out == io.Discard {
			logger.SetOutput(os.Stderr)
		}
	}
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	for _, opt := range opts {
		opt(logger)
	}

	return entry
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}
