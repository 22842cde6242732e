package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/vmsg/internal/errors"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show vmsg configuration",
	Long: `Show the effective vmsg configuration in YAML format.

The configuration file is config.yaml in the working directory or in the
vmsg config directory (~/.config/vmsg). Every key can be overridden with a
VMSG_ environment variable, e.g. VMSG_OUTPUT=json.`,
	Example: `  # Show all configuration
  vmsg config

  # Get a single value
  vmsg config get output

See Also: vmsg config get`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigList(cmd.OutOrStdout())
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key.

Array values are printed one per line.`,
	Example: `  vmsg config get output
  vmsg config get catalogs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigGet(cmd.OutOrStdout(), args[0])
	},
}

func runConfigList(w io.Writer) error {
	if configLoadErr != nil {
		return errors.NewUserError(errors.Mark(configLoadErr, errors.ErrInvalidConfig),
			"Fix config.yaml or point --config at a valid file")
	}
	if cfg == nil {
		return errors.NewSystemError(errors.New("configuration not loaded"), "")
	}

	if cfg.File != "" {
		fmt.Fprintf(w, "# %s\n", cfg.File)
	} else {
		fmt.Fprintln(w, "# defaults (no config file found)")
	}
	return writeYAML(w, cfg)
}

func runConfigGet(w io.Writer, key string) error {
	if !viper.IsSet(key) {
		fmt.Fprintln(w, "not set")
		return nil
	}

	switch v := viper.Get(key).(type) {
	case []any:
		for _, item := range v {
			fmt.Fprintln(w, item)
		}
	case []string:
		for _, item := range v {
			fmt.Fprintln(w, item)
		}
	default:
		fmt.Fprintln(w, viper.GetString(key))
	}
	return nil
}
