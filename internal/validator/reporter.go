package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// maxValueWidth bounds how much of an offending value is printed.
const maxValueWidth = 50

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the validation result to the output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		result = &Result{}
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	default:
		return r.reportText(result)
	}
}

func (r *Reporter) reportJSON(result *Result) error {
	if result.Issues == nil {
		result = &Result{Issues: []Issue{}}
	}
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(result), "encoding JSON report")
}

func (r *Reporter) reportText(result *Result) error {
	errs := result.Errors()
	warnings := result.Warnings()
	infos := result.Infos()

	if len(errs) == 0 && len(warnings) == 0 {
		fmt.Fprintln(r.out, color.GreenString("✓ Validation passed"))
	} else {
		var summary []string
		if len(errs) > 0 {
			summary = append(summary, color.RedString("%d error(s)", len(errs)))
		}
		if len(warnings) > 0 {
			summary = append(summary, color.YellowString("%d warning(s)", len(warnings)))
		}
		fmt.Fprintf(r.out, "Validation failed: %s\n", strings.Join(summary, ", "))
	}

	r.printSection("Errors:", errs, color.FgRed)
	r.printSection("Warnings:", warnings, color.FgYellow)
	r.printSection("Info:", infos, color.FgBlue)

	return nil
}

func (r *Reporter) printSection(title string, issues []Issue, c color.Attribute) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, title)
	for _, i := range issues {
		r.printIssue(i, c)
	}
}

// printIssue writes one line:  • field [reason]: message (ctx=v) [value]
func (r *Reporter) printIssue(i Issue, c color.Attribute) {
	printer := color.New(c).SprintFunc()
	faint := color.New(color.FgHiBlack)

	var sb strings.Builder
	sb.WriteString("  • ")

	if i.Field != "" {
		sb.WriteString(printer(i.Field))
		if i.Reason != "" {
			sb.WriteString(" [" + i.Reason + "]")
		}
		sb.WriteString(": ")
	} else if i.Reason != "" {
		sb.WriteString("[" + i.Reason + "] ")
	}

	sb.WriteString(i.Message)

	if len(i.Context) > 0 {
		ctxParts := make([]string, 0, len(i.Context))
		for k, v := range i.Context {
			ctxParts = append(ctxParts, k+"="+v)
		}
		sort.Strings(ctxParts)
		sb.WriteString(" ")
		sb.WriteString(faint.Sprintf("(%s)", strings.Join(ctxParts, ", ")))
	}

	if i.Value != nil {
		valStr := fmt.Sprintf("%v", i.Value)
		if len(valStr) > maxValueWidth {
			valStr = valStr[:maxValueWidth-3] + "..."
		}
		sb.WriteString(faint.Sprintf(" [%s]", valStr))
	}

	fmt.Fprintln(r.out, sb.String())
}
