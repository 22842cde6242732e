package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/vmsg/internal/errors"
	"github.com/thoreinstein/vmsg/internal/message"
)

func init() {
	catalogCmd.AddCommand(catalogBrowseCmd)
}

var catalogBrowseCmd = &cobra.Command{
	Use:   "browse [catalog...]",
	Short: "Fuzzy-search the composed catalog",
	Long: `Interactively search every default and override of the composed
catalogs. The selected entry is printed on exit.`,
	Example: `  vmsg catalog browse messages.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalogBrowse(cmd.Context(), cmd.OutOrStdout(), args)
	},
}

func runCatalogBrowse(ctx context.Context, w io.Writer, args []string) error {
	r, err := loadResolver(ctx, args)
	if err != nil {
		return err
	}

	entries := catalogEntries(r)
	if len(entries) == 0 {
		fmt.Fprintln(w, "No messages defined.")
		return nil
	}

	idx, err := fuzzyfinder.Find(
		entries,
		func(i int) string {
			return fmt.Sprintf("%s [%s] %s", entries[i].field(), entries[i].Reason, entries[i].Template)
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return describeEntry(entries[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive browse failed")
	}

	fmt.Fprint(w, describeEntry(entries[idx]))
	return nil
}

// describeEntry renders an entry for the preview window and final output.
func describeEntry(e catalogEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Field:    %s\n", e.field())
	fmt.Fprintf(&sb, "Reason:   %s\n", e.Reason)
	fmt.Fprintf(&sb, "Source:   %s\n", e.source())
	if params := message.Placeholders(e.Template); len(params) > 0 {
		fmt.Fprintf(&sb, "Params:   %s\n", strings.Join(params, ", "))
	}
	fmt.Fprintf(&sb, "\n%s\n", e.Template)
	if message.Malformed(e.Template) {
		sb.WriteString("\n(unbalanced {{ }} markers are printed literally)\n")
	}
	return sb.String()
}
