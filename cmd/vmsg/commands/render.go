package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/vmsg/internal/errors"
	"github.com/thoreinstein/vmsg/internal/logging"
	"github.com/thoreinstein/vmsg/internal/message"
)

var (
	renderParams map[string]string
	renderStrict bool
)

func init() {
	renderCmd.Flags().StringToStringVarP(&renderParams, "param", "p", nil,
		"placeholder value as name=value, repeatable")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false,
		"fail when a placeholder has no value")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <template>",
	Short: "Interpolate parameters into a message template",
	Long: `Replace {{ name }} placeholders in a template with --param values.

Placeholders without a value are left as written. Use --strict to fail
instead.`,
	Example: `  vmsg render "{{ field }} must be at least {{ min }} characters" -p field=name -p min=3

  See Also: vmsg lookup`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd.Context(), cmd.OutOrStdout(), args[0], renderParams, renderStrict)
	},
}

func runRender(ctx context.Context, w io.Writer, template string, params map[string]string, strict bool) error {
	var missing []string
	for _, name := range message.Placeholders(template) {
		if _, ok := params[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		if strict {
			return errors.NewUserError(
				errors.Newf("unresolved placeholder(s): %s", strings.Join(missing, ", ")),
				"Pass values with --param name=value")
		}
		logging.FromContext(ctx).Warn("unresolved placeholders", "names", missing)
	}

	fmt.Fprintln(w, message.Interpolate(template, params))
	return nil
}
