package commands

import (
	"fmt"

	"github.com/bryanchriswhite/swaybar-helper/internal/config"
	"github.com/bryanchriswhite/swaybar-helper/internal/status"
	"github.com/spf13/cobra"
)

var focusedOverrides = config.Default()

var focusedCmd = &cobra.Command{
	Use:   "focused",
	Short: "Print the status line for the currently focused window and exit",
	Long: `Query the layout tree once and print the line wayeyes would print for the
window that currently has focus. Accepts the same override flags as wayeyes.`,
	Args: noExtraArgs,
	RunE: runFocused,
}

func init() {
	config.BindFlags(focusedCmd.Flags(), &focusedOverrides)
	rootCmd.AddCommand(focusedCmd)
}

func runFocused(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	u, err := status.Snapshot(cmd.Context(), socketPath, cfg)
	if err != nil {
		return runtimeError(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), u.Line)
	return nil
}
