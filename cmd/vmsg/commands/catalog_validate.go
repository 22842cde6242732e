package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/vmsg/internal/catalog"
	"github.com/thoreinstein/vmsg/internal/errors"
	"github.com/thoreinstein/vmsg/internal/validator"
)

var catalogValidateJSON bool

func init() {
	catalogValidateCmd.Flags().BoolVar(&catalogValidateJSON, "json", false,
		"output results as JSON")
	catalogCmd.AddCommand(catalogValidateCmd)
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a message catalog",
	Long: `Validate a catalog file.

Errors: unreadable or malformed files, unsupported versions, reason codes
or field keys that are empty or contain whitespace.

Warnings: empty templates, unbalanced {{ }} markers, fields without
overrides.

Info: the parameters each template expects.

Exit codes:
  0 - Valid catalog (warnings allowed)
  1 - Invalid catalog`,
	Example: `  # Validate a catalog
  vmsg catalog validate ./messages.yaml

  # JSON output for CI/CD
  vmsg catalog validate ./messages.toml --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalogValidate(cmd.OutOrStdout(), args[0])
	},
}

func runCatalogValidate(w io.Writer, path string) error {
	format := validator.FormatText
	if catalogValidateJSON {
		format = validator.FormatJSON
	}

	var result *validator.Result
	c, err := catalog.Load(path)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return errors.NewUserError(err, "")
		}
		result = &validator.Result{}
		result.AddError("catalog", err.Error(), nil)
	} else {
		result = catalog.Validate(c)
	}

	if err := validator.NewReporter(w, format).Report(result); err != nil {
		return err
	}

	if result.HasErrors() {
		return errors.NewExitError(errors.Wrapf(errors.ErrValidationFailed, "catalog %s", path), errors.ExitUser)
	}
	return nil
}
