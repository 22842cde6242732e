package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/vmsg/internal/catalog"
	"github.com/thoreinstein/vmsg/internal/editor"
	"github.com/thoreinstein/vmsg/internal/errors"
	"github.com/thoreinstein/vmsg/internal/logging"
)

func init() {
	catalogCmd.AddCommand(catalogEditCmd)
}

var catalogEditCmd = &cobra.Command{
	Use:   "edit <path>",
	Short: "Open a catalog in $EDITOR and validate it afterwards",
	Long: `Open a catalog file in your editor. A missing file is created first as
an empty catalog in the format implied by its extension. The catalog is
validated when the editor exits.

The editor is taken from $VMSG_EDITOR, $EDITOR or $VISUAL, falling back to
nano and then vi.`,
	Example: `  vmsg catalog edit messages.yaml
  VMSG_EDITOR="code --wait" vmsg catalog edit messages.toml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalogEdit(cmd.Context(), cmd.OutOrStdout(), editor.Streams{
			In:  cmd.InOrStdin(),
			Out: cmd.OutOrStdout(),
			Err: cmd.ErrOrStderr(),
		}, args[0])
	},
}

func runCatalogEdit(ctx context.Context, w io.Writer, streams editor.Streams, path string) error {
	if _, err := catalog.FormatFromPath(path); err != nil {
		return errors.NewUserError(err, "Use a .yaml, .yml, .toml or .json file")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := catalog.Save(path, catalog.New()); err != nil {
			return errors.NewSystemError(err, "")
		}
		logging.FromContext(ctx).Info("created catalog", "path", path)
	}

	if err := editor.Open(ctx, path, streams); err != nil {
		return errors.NewUserError(err, "Set $VMSG_EDITOR or $EDITOR to your editor")
	}

	return runCatalogValidate(w, path)
}
