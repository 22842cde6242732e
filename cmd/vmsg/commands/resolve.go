package commands

import (
	"bytes"
	"context"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/vmsg/internal/config"
	"github.com/thoreinstein/vmsg/internal/errors"
	"github.com/thoreinstein/vmsg/internal/failure"
	"github.com/thoreinstein/vmsg/internal/message"
	"github.com/thoreinstein/vmsg/internal/validator"
	"github.com/thoreinstein/vmsg/pkg/fileutil"
)

var (
	resolveJSON        bool
	resolveYAML        bool
	resolveInputFormat string
)

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false,
		"output messages as JSON")
	resolveCmd.Flags().BoolVar(&resolveYAML, "yaml", false,
		"output messages as YAML")
	resolveCmd.Flags().StringVar(&resolveInputFormat, "input-format", "",
		"failure document format: json, yaml (default: from extension, json for stdin)")
	resolveCmd.MarkFlagsMutuallyExclusive("json", "yaml")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <failures-file|->",
	Short: "Resolve validation failures into messages",
	Long: `Read validation failures and print the resolved message for each one.

The failure document is a JSON array or YAML sequence of objects with key,
reason, message and params. Use - to read it from standard input.

Messages are grouped by field key. Recording the same key and reason twice
keeps the last message.

Exit codes:
  0 - No failures
  1 - At least one message was produced, or the input was invalid`,
	Example: `  # Resolve a failure file with one catalog
  vmsg resolve failures.json -c messages.yaml

  # Read from stdin and emit JSON
  my-validator | vmsg resolve - --json

  See Also:
    vmsg lookup   - Show which template applies
    vmsg catalog  - Manage catalogs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolve(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), args[0])
	},
}

func runResolve(ctx context.Context, w io.Writer, stdin io.Reader, path string) error {
	failures, err := readFailures(path, stdin)
	if err != nil {
		return err
	}

	if res := failure.Check(failures); res.HasErrors() {
		if err := validator.NewReporter(w, reportFormat()).Report(res); err != nil {
			return err
		}
		return errors.NewUserError(errors.Mark(res.Err(), failure.ErrInvalidFailure),
			"Every failure needs a key and a reason")
	}

	r, err := loadResolver(ctx, nil)
	if err != nil {
		return err
	}
	if err := failure.RecordAll(r, failures); err != nil {
		return errors.NewUserError(err, "")
	}

	messages := r.Messages()
	if err := writeMessages(w, messages, outputFormat(resolveJSON, resolveYAML)); err != nil {
		return err
	}

	if n := messages.Count(); n > 0 {
		return errors.NewExitError(errors.Wrapf(errors.ErrValidationFailed, "%d message(s)", n), errors.ExitUser)
	}
	return nil
}

func readFailures(path string, stdin io.Reader) ([]failure.Failure, error) {
	data, err := fileutil.ReadInput(path, stdin)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewUserError(errors.Wrapf(errors.ErrNotFound, "failure file %s", path), "")
		}
		return nil, errors.NewUserError(err, "")
	}

	format := failure.Format(resolveInputFormat)
	if format == "" {
		format = failure.FormatFromPath(path)
	}

	failures, err := failure.Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, errors.NewUserError(err,
			"Failures must be a JSON array or YAML sequence of {key, reason, message, params}")
	}
	return failures, nil
}

func writeMessages(w io.Writer, messages message.Messages, format string) error {
	switch format {
	case config.OutputJSON:
		return writeJSON(w, messages)
	case config.OutputYAML:
		return writeYAML(w, messages)
	default:
		return validator.NewReporter(w, validator.FormatText).Report(validator.FromMessages(messages))
	}
}

// reportFormat maps the output setting onto a validator report format.
// YAML output falls back to JSON reports.
func reportFormat() validator.Format {
	if outputFormat(resolveJSON, resolveYAML) == config.OutputText {
		return validator.FormatText
	}
	return validator.FormatJSON
}
