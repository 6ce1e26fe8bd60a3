package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func NewWaitCmd(app *App) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "wait",
		Short: "Wait for the configuration root to be created",
		Long: `Wait for the configuration root to be created, then print the server
directory. Returns immediately when the root already exists.

The parent of the configuration root must exist.`,
		Example: `  wineconf wait --timeout 30s`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Context()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			sd, err := c.WaitServerDir(ctx)
			if err != nil {
				return fmt.Errorf("waiting for %s: %w", c.ConfigDir(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), sd.Path)
			return nil
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 0, "Give up after this long (0 waits forever)")

	return cmd
}
