package cmd

import (
	"fmt"

	"github.com/grovetools/wineconf/errors"
	"github.com/spf13/cobra"
)

func NewExecCmd(app *App) *cobra.Command {
	var envVar string
	var loader bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "exec [flags] (--loader | NAME) [ARGS...]",
		Short: "Run a helper binary from the first location that works",
		Long: `Run a helper binary, replacing this process.

Locations are tried in order:
  1. the build binary directory rebased onto the running binary
     (or the directory wineconf was invoked from)
  2. the path in the variable named by --env
  3. each PATH entry
  4. the build binary directory

With --loader the binary is the one this process was invoked as, and
wine-preloader is tried in front of every location.`,
		Example: `  # Start the server, honouring WINESERVER
  wineconf exec --env WINESERVER wineserver -p

  # Show where wineserver would be looked for
  wineconf exec --dry-run wineserver`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if !loader {
				if len(args) == 0 {
					return errors.New(errors.ErrCodeInvalidInput, "a binary name or --loader is required")
				}
				name, args = args[0], args[1:]
			}

			l := app.Launcher()

			if dryRun {
				if name == "" {
					if l.Origin.Name == "" {
						return errors.NoLoaderName()
					}
					name = l.Origin.Name
				}
				for cand := range l.Candidates(name, envVar) {
					fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s\n", cand.Step, cand.Path)
				}
				return nil
			}

			argv := append([]string{""}, args...)
			return l.Exec(name, argv, envVar)
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&envVar, "env", "e", "", "Environment variable that may hold the binary's exact path")
	cmd.Flags().BoolVar(&loader, "loader", false, "Run the default loader through the preloader")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "List the candidate locations instead of executing")

	return cmd
}
