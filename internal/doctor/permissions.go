package doctor

import (
	"fmt"
	"os"
	"runtime"

	"github.com/thoreinstein/vmsg/internal/errors"
)

// secureFilePerm is the target permission for config and catalog files (rw-r--r--).
const secureFilePerm os.FileMode = 0o644

// pathIssue represents a single permission problem.
type pathIssue struct {
	Path        string
	Problem     string
	Severity    Severity
	Permissions string
	Fixable     bool
	FixHint     string
}

// PermissionCheck reports config and catalog files that other users can
// modify. Altered catalogs change what end users are shown.
type PermissionCheck struct {
	PermissionFixer
	paths []string
}

var (
	_ Check = (*PermissionCheck)(nil)
	_ Fixer = (*PermissionCheck)(nil)
)

// NewPermissionCheck creates a check over the given files. Missing files
// are skipped.
func NewPermissionCheck(paths ...string) *PermissionCheck {
	return &PermissionCheck{paths: paths}
}

// Name returns the unique identifier for this check.
func (c *PermissionCheck) Name() string {
	return "file-permissions"
}

// Category returns the grouping for this check.
func (c *PermissionCheck) Category() string {
	return "filesystem"
}

// Run executes the check.
func (c *PermissionCheck) Run() *CheckResult {
	var issues []pathIssue
	checked := 0

	for _, p := range c.paths {
		if p == "" {
			continue
		}
		found, ok := c.checkFile(p)
		if ok {
			checked++
		}
		issues = append(issues, found...)
	}

	c.setIssues(issues)
	return c.buildResult(issues, checked)
}

// checkFile inspects one file. ok is false when the file does not exist.
func (c *PermissionCheck) checkFile(path string) (issues []pathIssue, ok bool) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, false
	}
	if err != nil {
		return []pathIssue{{
			Path:     path,
			Problem:  fmt.Sprintf("cannot stat file: %v", err),
			Severity: SeverityError,
		}}, true
	}

	// Unix permissions don't apply on Windows
	if runtime.GOOS == "windows" {
		return nil, true
	}

	perm := info.Mode().Perm()
	switch {
	case perm&0o002 != 0:
		issues = append(issues, pathIssue{
			Path:        path,
			Problem:     "file is world-writable",
			Severity:    SeverityWarning,
			Permissions: formatPermissions(info.Mode()),
			Fixable:     true,
			FixHint:     "chmod 644 " + path,
		})
	case perm&0o020 != 0:
		issues = append(issues, pathIssue{
			Path:        path,
			Problem:     "file is group-writable",
			Severity:    SeverityWarning,
			Permissions: formatPermissions(info.Mode()),
			Fixable:     true,
			FixHint:     "chmod 644 " + path,
		})
	}
	return issues, true
}

// buildResult constructs the final CheckResult from accumulated issues.
func (c *PermissionCheck) buildResult(issues []pathIssue, checked int) *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	if len(issues) == 0 {
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("all %d file(s) have safe permissions", checked)
		return result
	}

	details := make([]map[string]any, 0, len(issues))
	levels := make([]Severity, 0, len(issues))
	for _, issue := range issues {
		levels = append(levels, issue.Severity)
		m := map[string]any{
			"path":     issue.Path,
			"problem":  issue.Problem,
			"severity": issue.Severity.String(),
		}
		if issue.Permissions != "" {
			m["permissions"] = issue.Permissions
		}
		details = append(details, m)
	}

	result.Status = worst(levels...)
	result.Message = fmt.Sprintf("%d permission issue(s) in %d file(s)", len(issues), checked)
	result.Details = map[string]any{"issues": details}
	result.Fixable = c.CanFix()
	if len(issues) == 1 {
		result.FixHint = issues[0].FixHint
	} else {
		result.FixHint = "Run: vmsg doctor --fix"
	}
	return result
}

// PermissionFixer restores safe permissions on files found by a
// PermissionCheck.
type PermissionFixer struct {
	issues []pathIssue
}

// CanFix returns true if there are any fixable permission issues.
func (f *PermissionFixer) CanFix() bool {
	return f.CountFixable() > 0
}

// CountFixable returns the number of fixable issues.
func (f *PermissionFixer) CountFixable() int {
	count := 0
	for _, issue := range f.issues {
		if issue.Fixable {
			count++
		}
	}
	return count
}

// Fix attempts to fix all fixable permission issues.
func (f *PermissionFixer) Fix() []FixResult {
	results := make([]FixResult, 0, f.CountFixable())
	for _, issue := range f.issues {
		if !issue.Fixable {
			continue
		}
		results = append(results, f.fixIssue(issue))
	}
	return results
}

func (f *PermissionFixer) fixIssue(issue pathIssue) FixResult {
	result := FixResult{Path: issue.Path}

	if err := os.Chmod(issue.Path, secureFilePerm); err != nil {
		result.Description = fmt.Sprintf("failed to chmod %04o: %v", secureFilePerm, err)
		result.Error = errors.Wrapf(err, "chmod %04o %s", secureFilePerm, issue.Path)
		return result
	}

	result.Fixed = true
	result.Description = fmt.Sprintf("chmod %04o", secureFilePerm)
	return result
}

func (f *PermissionFixer) setIssues(issues []pathIssue) {
	f.issues = issues
}

// formatPermissions renders a mode like "-rw-rw-rw- (0666)".
func formatPermissions(mode os.FileMode) string {
	return fmt.Sprintf("%s (%04o)", mode.Perm(), mode.Perm())
}
