package commands

import (
	"encoding/json"
	"fmt"

	"github.com/bryanchriswhite/swaybar-helper/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect swaybar-helper configuration",
	Long:  `View the effective configuration and where it is read from.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Display the configuration after applying the config file to the defaults.`,
	Example: `  # Show configuration as YAML (default)
  swaybar-helper config show

  # Show configuration as JSON
  swaybar-helper config show --output json`,
	Args: noExtraArgs,
	RunE: runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Long:  `Display the path of the configuration file that would be read.`,
	Args:  noExtraArgs,
	RunE:  runConfigPath,
}

var outputFlag string

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)

	configShowCmd.Flags().StringVarP(&outputFlag, "output", "o", "yaml", "output format (yaml or json)")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}

	switch outputFlag {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(cfg)
	case "yaml":
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(cfg)
	default:
		return usageError(ExitFailure, fmt.Errorf("unsupported output format: %s (use 'yaml' or 'json')", outputFlag))
	}
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		fmt.Fprintln(cmd.OutOrStdout(), cfgFile)
		return nil
	}

	path, err := config.DefaultPath()
	if err != nil {
		return runtimeError(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
