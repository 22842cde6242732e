package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/vmsg/internal/doctor"
	"github.com/thoreinstein/vmsg/internal/errors"
)

var (
	doctorJSON bool
	doctorAll  bool
	doctorFix  bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorAll, "all", false,
		"show every check, including passed ones")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false,
		"repair fixable issues (file permissions)")
	doctorCmd.MarkFlagsMutuallyExclusive("json", "all")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and catalog issues",
	Long: `Run diagnostic checks on the vmsg configuration and message catalogs.

Checks that the config file loads, that every catalog parses and
validates, which catalog entries are shadowed by an earlier catalog, and
that config and catalog files are not writable by other users.

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  vmsg doctor
  vmsg doctor --all
  vmsg doctor --fix`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDoctor(cmd.OutOrStdout())
	},
}

func runDoctor(w io.Writer) error {
	ps, err := catalogPaths(nil)
	if err != nil {
		return err
	}

	var configPath string
	if cfg != nil {
		configPath = cfg.File
	}

	catalogs := doctor.NewCatalogCheck(ps)
	runner := doctor.NewRunner()
	runner.AddCheck(doctor.NewConfigCheck(configPath, configLoadErr))
	runner.AddCheck(catalogs)
	runner.AddCheck(doctor.NewShadowCheck(catalogs))
	runner.AddCheck(doctor.NewPermissionCheck(append([]string{configPath}, ps...)...))

	report := runner.Run()

	var fixes []doctor.FixResult
	if doctorFix {
		fixes = runner.Fix()
	}

	if doctorJSON {
		if err := writeJSON(w, struct {
			*doctor.Report
			Fixes []doctor.FixResult `json:"fixes,omitempty"`
		}{report, fixes}); err != nil {
			return err
		}
	} else {
		printDoctorReport(w, report, fixes)
	}

	switch {
	case report.HasErrors():
		return errors.NewExitError(errors.New("doctor found errors"), errors.ExitSystem)
	case report.HasWarnings() && !allFixed(fixes, report):
		return errors.NewExitError(errors.New("doctor found warnings"), errors.ExitUser)
	}
	return nil
}

func printDoctorReport(w io.Writer, report *doctor.Report, fixes []doctor.FixResult) {
	hasOutput := false
	for _, result := range report.Results {
		if !doctorAll && result.Status != doctor.SeverityError && result.Status != doctor.SeverityWarning {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)

		if result.FixHint != "" && (result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning) {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
		if shadowed, ok := result.Details["shadowed"].([]string); ok {
			for _, s := range shadowed {
				fmt.Fprintf(w, "  - %s\n", s)
			}
		}
	}

	for _, f := range fixes {
		hasOutput = true
		if f.Fixed {
			fmt.Fprintf(w, "%s fixed %s: %s\n", color.GreenString("✓"), f.Path, f.Description)
		} else {
			fmt.Fprintf(w, "%s could not fix %s: %s\n", color.RedString("✗"), f.Path, f.Description)
		}
	}

	if hasOutput {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

// allFixed reports whether fixes resolved every warning. Only permission
// warnings are fixable, so any other warning leaves the run failing.
func allFixed(fixes []doctor.FixResult, report *doctor.Report) bool {
	if len(fixes) == 0 {
		return false
	}
	for _, f := range fixes {
		if !f.Fixed {
			return false
		}
	}
	for _, r := range report.Results {
		if r.Status == doctor.SeverityWarning && !r.Fixable {
			return false
		}
	}
	return true
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.BlueString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
