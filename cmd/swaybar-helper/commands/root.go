package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/bryanchriswhite/swaybar-helper/internal/config"
	"github.com/bryanchriswhite/swaybar-helper/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Exit statuses.
const (
	ExitMissingArgs = 1
	ExitFailure     = 2
	ExitExtraArgs   = 3
)

var (
	cfgFile    string
	logLevel   string
	socketPath string
	rootCmd    = &cobra.Command{
		Use:   "swaybar-helper",
		Short: "Status bar helpers driven by sway IPC events",
		Long: `swaybar-helper listens to the sway control socket and prints one status
line per relevant event, ready to be used as a waybar custom module.

Commands:
  • wayeyes - show whether the focused window is native Wayland or Xwayland
  • focused - print the line for the currently focused window once`,
		Args:          rootArgs,
		RunE:          runRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/swaybar-helper/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error); logs go to stderr")
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", "", "sway IPC socket (default is $SWAYSOCK, then $I3SOCK)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(ExitFailure, &config.ConfigurationError{Source: "arguments", Err: err})
	})
}

func initLogging() {
	logger.Init(logLevel, false)
}

// exitError carries the process exit status for a failed command.
type exitError struct {
	code  int
	err   error
	usage bool
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func usageError(code int, err error) error {
	return &exitError{code: code, err: err, usage: true}
}

// runtimeError marks a failure after startup; nil stays nil.
func runtimeError(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: ExitFailure, err: err}
}

func exitCode(err error) (int, bool) {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code, ee.usage
	}
	var ce *config.ConfigurationError
	if errors.As(err, &ce) {
		return ExitFailure, true
	}
	return ExitFailure, false
}

func rootArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError(ExitFailure, fmt.Errorf("unknown command %q", args[0]))
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	return usageError(ExitMissingArgs, errors.New("not enough arguments"))
}

// loadConfig layers the config file and the override flags set on fs over
// the built-in defaults. fs may be nil.
func loadConfig(fs *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()

	path, required := cfgFile, true
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.WithComponent("config").Debug().Err(err).Msg("No config directory, using defaults")
			p = ""
		}
		path, required = p, false
	}

	if path != "" {
		var err error
		cfg, err = config.LoadFile(cfg, path, required)
		if err != nil {
			return config.Config{}, usageError(ExitFailure, err)
		}
	}

	if fs == nil {
		return cfg, nil
	}
	cfg, err := config.Apply(cfg, fs)
	if err != nil {
		return config.Config{}, usageError(ExitFailure, err)
	}
	return cfg, nil
}

// Execute runs the root command and exits with the status for its error.
func Execute() {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	code, usage := exitCode(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if usage {
		cmd.SetOut(os.Stdout)
		cmd.Usage()
	}
	os.Exit(code)
}
