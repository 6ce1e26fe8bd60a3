package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/wineconf/cli"
	"github.com/spf13/cobra"
)

func NewServerDirCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server-dir",
		Short: "Print the directory holding the server socket",
		Long: `Print the directory holding the server socket.

The name is derived from the uid and the device and inode of the
configuration root, so it cannot be known before the root exists. In that
case the command fails; use 'wineconf wait' to block until it is created.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Context()
			if err != nil {
				return err
			}
			sd, err := c.ServerDir()
			if err != nil {
				return err
			}

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.Marshal(map[string]string{
					"status": sd.Status.String(),
					"path":   sd.Path,
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			if !sd.Available() {
				return fmt.Errorf("%s does not exist yet, no server directory", c.ConfigDir())
			}
			fmt.Fprintln(cmd.OutOrStdout(), sd.Path)
			return nil
		},
	}

	return cmd
}
