package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/grovetools/wineconf/buildpaths"
	"github.com/grovetools/wineconf/cli"
	"github.com/grovetools/wineconf/logging"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// PathsOutput represents the locations resolved for the invoking user.
type PathsOutput struct {
	ConfigDir    string            `json:"config_dir" yaml:"config_dir" toml:"config_dir"`
	FromPrefix   bool              `json:"from_prefix" yaml:"from_prefix" toml:"from_prefix"`
	ServerStatus string            `json:"server_status" yaml:"server_status" toml:"server_status"`
	ServerDir    string            `json:"server_dir,omitempty" yaml:"server_dir,omitempty" toml:"server_dir,omitempty"`
	UserName     string            `json:"user_name" yaml:"user_name" toml:"user_name"`
	UID          int               `json:"uid" yaml:"uid" toml:"uid"`
	DllDir       string            `json:"dll_dir" yaml:"dll_dir" toml:"dll_dir"`
	Build        buildpaths.Layout `json:"build" yaml:"build" toml:"build"`
}

func NewPathsCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the configuration and runtime paths for the current user",
		Long: `Print the configuration and runtime paths for the current user.

The configuration root is WINEPREFIX when set, otherwise $HOME/.wine.
server_dir is only present once the configuration root exists; until then
server_status is "not-yet-provisioned".

The build section shows the install layout baked into this binary; dll_dir
is that layout rebased onto the directory holding the running binary.`,
		Example: `  # Human readable
  wineconf paths

  # For scripts
  wineconf paths --format json
  wineconf paths --format toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cli.GetOptions(cmd).JSONOutput {
				format = "json"
			}

			c, err := app.Context()
			if err != nil {
				return err
			}
			sd, err := c.ServerDir()
			if err != nil {
				return err
			}

			output := PathsOutput{
				ConfigDir:    c.ConfigDir(),
				FromPrefix:   c.FromPrefix(),
				ServerStatus: sd.Status.String(),
				ServerDir:    sd.Path,
				UserName:     c.UserName(),
				UID:          c.UID(),
				DllDir:       c.DllDir(),
				Build:        buildpaths.Get(),
			}
			return writePaths(cmd.OutOrStdout(), format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json, yaml or toml")

	return cmd
}

func writePaths(w io.Writer, format string, output PathsOutput) error {
	var data []byte
	var err error

	switch format {
	case "json":
		data, err = json.MarshalIndent(output, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case "yaml":
		data, err = yaml.Marshal(output)
	case "toml":
		data, err = toml.Marshal(output)
	case "text", "":
		pretty := logging.NewPrettyLogger().WithWriter(w)
		pretty.Path("config_dir", output.ConfigDir)
		pretty.Field("from_prefix", output.FromPrefix)
		if output.ServerDir != "" {
			pretty.Success("server_dir: " + output.ServerDir)
		} else {
			pretty.WarnPretty("server_dir: " + output.ServerStatus)
		}
		pretty.Field("user_name", output.UserName)
		pretty.Field("uid", output.UID)
		pretty.Path("dll_dir", output.DllDir)
		pretty.Path("build.lib_dir", output.Build.LibDir)
		pretty.Path("build.bin_dir", output.Build.BinDir)
		pretty.Path("build.dll_dir", output.Build.DllDir)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, json, yaml or toml)", format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal paths to %s: %w", format, err)
	}

	_, err = w.Write(data)
	return err
}
