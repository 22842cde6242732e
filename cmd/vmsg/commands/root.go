// Package commands implements the CLI commands for vmsg.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/vmsg/cmd"
	"github.com/thoreinstein/vmsg/internal/config"
	"github.com/thoreinstein/vmsg/internal/errors"
	"github.com/thoreinstein/vmsg/internal/logging"
)

// debugEnv enables debug (1, true) or trace (2) logging when no -v is given.
const debugEnv = "VMSG_DEBUG"

// catalogFlag holds the values of the repeatable --catalog flag.
var catalogFlag []string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// cfg is the loaded configuration, nil if loading failed.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringArrayVarP(&catalogFlag, "catalog", "c", nil,
		"message catalog to load, repeatable; earlier catalogs win")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml, then the vmsg config directory)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("vmsg version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "vmsg",
	Short: "Resolve user-facing validation messages",
	Long: `vmsg turns validation failures into user-facing messages.

Each failure names a field key, a reason code, a fallback message and
parameters. The message template is chosen by precedence:

  1. an override for the field and reason, from a catalog
  2. a default message for the reason, from a catalog
  3. the failure's own message

{{ name }} placeholders in the chosen template are replaced by the
failure's parameters.

Catalogs come from --catalog, the catalogs list in config.yaml, or the
catalogs directory inside the vmsg config directory, in that order.`,
	Example: `  # Resolve failures produced by a validator
  vmsg resolve failures.json -c messages.yaml

  # Which template applies to email/required?
  vmsg lookup email required

  # Check a catalog
  vmsg catalog validate messages.yaml

  See Also: vmsg catalog, vmsg config`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			switch os.Getenv(debugEnv) {
			case "1", "true":
				v = 2
			case "2":
				v = 3
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	handlers := []slog.Handler{logging.NewFormatHandler(logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
	})}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}

	logger := slog.New(logging.NewFanoutHandler(handlers...))
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports config load errors, except for commands that must
// work without a usable config. The config commands report the error
// themselves.
func checkConfig(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "config", "doctor":
		return nil
	}
	if cmd.HasParent() && cmd.Parent().Name() == "config" {
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(errors.Mark(configLoadErr, errors.ErrInvalidConfig))
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
