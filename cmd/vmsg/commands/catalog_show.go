package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/vmsg/internal/message"
)

func init() {
	catalogCmd.AddCommand(catalogShowCmd)
}

var catalogShowCmd = &cobra.Command{
	Use:   "show [catalog...]",
	Short: "Print the composed catalog as a table",
	Long: `Print every default and override of the composed catalogs, with the
parameters each template expects. Defaults are listed under field "*".

Without arguments, the configured catalogs are shown.`,
	Example: `  vmsg catalog show messages.yaml
  vmsg catalog show -c app.yaml -c shared.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalogShow(cmd.Context(), cmd.OutOrStdout(), args)
	},
}

func runCatalogShow(ctx context.Context, w io.Writer, args []string) error {
	r, err := loadResolver(ctx, args)
	if err != nil {
		return err
	}

	entries := catalogEntries(r)
	if len(entries) == 0 {
		fmt.Fprintln(w, "No messages defined.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Field", "Reason", "Template", "Params"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.field(), e.Reason, e.Template, strings.Join(message.Placeholders(e.Template), ", ")})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
		{Number: 3, WidthMax: 60},
	})
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
	return nil
}
