package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/vmsg/internal/errors"
)

var lookupJSON bool

func init() {
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false,
		"output the result as JSON")
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <key> <reason>",
	Short: "Show the catalog template for a field and reason",
	Long: `Show the raw template the loaded catalogs define for a field key and
reason code. An override for the field wins over the default for the
reason. No interpolation is applied.

Exit codes:
  0 - A template was found
  1 - Neither an override nor a default exists`,
	Example: `  # Template used for a missing email
  vmsg lookup email required -c messages.yaml

  See Also: vmsg render, vmsg catalog show`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd.Context(), cmd.OutOrStdout(), args[0], args[1])
	},
}

// lookupResult represents the JSON output structure.
type lookupResult struct {
	Key      string `json:"key"`
	Reason   string `json:"reason"`
	Found    bool   `json:"found"`
	Source   string `json:"source,omitempty"`
	Template string `json:"template,omitempty"`
}

func runLookup(ctx context.Context, w io.Writer, key, reason string) error {
	r, err := loadResolver(ctx, nil)
	if err != nil {
		return err
	}

	result := lookupResult{Key: key, Reason: reason}
	if template, ok := r.GetOverride(reason, key); ok {
		_, source := r.Resolve(key, reason, "")
		result.Found = true
		result.Source = source.String()
		result.Template = template
	}

	if lookupJSON {
		if err := writeJSON(w, result); err != nil {
			return err
		}
	} else if result.Found {
		fmt.Fprintf(w, "%s: %s\n", result.Source, result.Template)
	}

	if !result.Found {
		return errors.NewUserError(errors.Wrapf(errors.ErrNoOverride, "%s [%s]", key, reason),
			"Add an override for the field or a default for the reason to a catalog")
	}
	return nil
}
