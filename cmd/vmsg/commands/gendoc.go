package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/vmsg/cmd"
	"github.com/thoreinstein/vmsg/internal/errors"
	"github.com/thoreinstein/vmsg/internal/paths"
)

var (
	genDocDir string
	genDocMan bool
)

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate Markdown or man page documentation for the CLI",
	Hidden: true,
	RunE: func(c *cobra.Command, _ []string) error {
		return runGenDoc(c.OutOrStdout(), genDocDir, genDocMan)
	},
}

func init() {
	genDocCmd.Flags().StringVarP(&genDocDir, "dir", "d", "", "output directory for documentation")
	genDocCmd.Flags().BoolVar(&genDocMan, "man", false, "generate man pages instead of Markdown")
	rootCmd.AddCommand(genDocCmd)
}

func runGenDoc(w io.Writer, dir string, man bool) error {
	if dir == "" {
		return errors.NewUserError(errors.New("output directory is required"), "Pass --dir <path>")
	}
	if err := paths.EnsureDir(dir, 0o755); err != nil {
		return err
	}

	var err error
	if man {
		err = doc.GenManTree(rootCmd, &doc.GenManHeader{
			Title:   "VMSG",
			Section: "1",
			Source:  "vmsg " + cmd.Version,
		}, dir)
	} else {
		err = doc.GenMarkdownTreeCustom(rootCmd, dir, filePrepender, linkHandler)
	}
	if err != nil {
		return errors.Wrap(err, "generating documentation")
	}

	fmt.Fprintf(w, "Documentation generated in %s\n", dir)
	return nil
}

// filePrepender adds front matter to each generated Markdown page.
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	// vmsg_catalog_show.md -> vmsg catalog show
	title := strings.ReplaceAll(base, "_", " ")

	return fmt.Sprintf(`---
title: "%s"
description: "Reference for %s command"
---
`, title, title)
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "/docs/reference/" + strings.ToLower(base) + "/"
}
