package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/vmsg/internal/catalog"
)

var catalogMergeOutput string

func init() {
	catalogMergeCmd.Flags().StringVarP(&catalogMergeOutput, "output", "o", "",
		"write the merged catalog to this file (format from extension); default stdout as YAML")
	catalogCmd.AddCommand(catalogMergeCmd)
}

var catalogMergeCmd = &cobra.Command{
	Use:   "merge <catalog>...",
	Short: "Combine catalogs into one",
	Long: `Combine catalogs into a single catalog. For every reason default and
every field override, the first catalog that defines it wins.`,
	Example: `  # Application messages on top of shared ones
  vmsg catalog merge app.yaml shared.yaml -o combined.yaml

  # Convert a YAML catalog to TOML
  vmsg catalog merge messages.yaml -o messages.toml`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalogMerge(cmd.Context(), cmd.OutOrStdout(), args, catalogMergeOutput)
	},
}

func runCatalogMerge(ctx context.Context, w io.Writer, args []string, output string) error {
	catalogs, err := loadCatalogs(ctx, args)
	if err != nil {
		return err
	}
	merged := catalog.FromResolver(catalog.Compose(catalogs))

	if output == "" {
		return writeYAML(w, merged)
	}

	if err := catalog.Save(output, merged); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s Merged %d catalog(s) into %s\n", color.GreenString("✓"), len(catalogs), output)
	return nil
}
