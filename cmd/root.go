// Package cmd holds the wineconf subcommands.
package cmd

import (
	"github.com/grovetools/wineconf/cli"
	"github.com/grovetools/wineconf/version"
	"github.com/spf13/cobra"
)

// loggedComponents are the library loggers the global flags apply to.
var loggedComponents = []string{"paths", "launcher"}

// NewRootCmd assembles the wineconf command tree around app.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"wineconf",
		"Inspect and use the per-user configuration and runtime paths",
	)
	cli.SetVersionTemplate(rootCmd, version.GetInfo())
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		for _, component := range loggedComponents {
			cli.GetLogger(cmd, component)
		}
		return nil
	}

	rootCmd.AddCommand(NewPathsCmd(app))
	rootCmd.AddCommand(NewServerDirCmd(app))
	rootCmd.AddCommand(NewExecCmd(app))
	rootCmd.AddCommand(NewWaitCmd(app))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
