package commands

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/bryanchriswhite/swaybar-helper/internal/api"
	"github.com/bryanchriswhite/swaybar-helper/internal/config"
	"github.com/bryanchriswhite/swaybar-helper/internal/logger"
	"github.com/bryanchriswhite/swaybar-helper/internal/shutdown"
	"github.com/bryanchriswhite/swaybar-helper/internal/status"
	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"
)

var (
	// wayeyesOverrides only receives flag values; loadConfig applies the
	// ones that were set on top of the file configuration.
	wayeyesOverrides = config.Default()
	listenAddr       string

	// subscriber is replaced in tests.
	subscriber = func() status.Subscriber {
		return status.SwaySubscriber{SocketPath: socketPath}
	}
)

var wayeyesCmd = &cobra.Command{
	Use:   "wayeyes",
	Short: "Print a status line each time focus moves to another window",
	Long: `Print one line to stdout at startup and one more every time a window gains
focus. The line tells whether the focused window is a native Wayland
(xdg-shell) window, an Xwayland window, or something else.

The placeholders {icon}, {tooltip}, {class} and {percentage} in --format are
replaced with the values of the matching category. Values are inserted as-is,
without any escaping.`,
	Example: `  # waybar custom module
  "custom/wayeyes": {
      "exec": "swaybar-helper wayeyes",
      "return-type": "json"
  }

  # Plain text output
  swaybar-helper wayeyes --format '{class}'

  # Mirror the status over HTTP as well
  swaybar-helper wayeyes --listen 127.0.0.1:7878`,
	Args: noExtraArgs,
	RunE: runWayeyes,
}

func init() {
	config.BindFlags(wayeyesCmd.Flags(), &wayeyesOverrides)
	wayeyesCmd.Flags().StringVar(&listenAddr, "listen", "", "also serve the status line over HTTP/WebSocket on this address")

	rootCmd.AddCommand(wayeyesCmd)
}

func noExtraArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError(ExitFailure, &config.ConfigurationError{
			Source: "arguments",
			Err:    fmt.Errorf("unexpected argument %q", args[0]),
		})
	}
	return nil
}

func runWayeyes(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("wayeyes")

	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	stop := shutdown.New()
	stop.Install()
	defer stop.Stop()

	runner := status.NewRunner(cfg, subscriber(), stop, cmd.OutOrStdout())

	if listenAddr == "" {
		return runtimeError(runner.Run(cmd.Context()))
	}

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return runtimeError(fmt.Errorf("failed to listen on %s: %w", listenAddr, err))
	}

	hub := status.NewHub()
	runner.SetHub(hub)
	server := api.NewServer(hub, cfg)

	var wg conc.WaitGroup
	wg.Go(func() {
		if err := server.Serve(ln); err != nil {
			log.Error().Err(err).Msg("Status mirror stopped")
		}
	})

	runErr := runner.Run(cmd.Context())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("Status mirror shutdown")
	}
	wg.Wait()

	return runtimeError(runErr)
}
