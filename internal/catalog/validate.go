package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/thoreinstein/vmsg/internal/message"
	"github.com/thoreinstein/vmsg/internal/validator"
)

// Validate checks a catalog and reports:
//
//   - errors for an unsupported version and for empty or whitespace-bearing
//     keys and reason codes
//   - warnings for empty templates, malformed placeholders, fields with no
//     overrides, and catalogs with no entries at all
//   - one info issue per placeholder name the catalog expects
func Validate(c *Catalog) *validator.Result {
	result := &validator.Result{}
	if c == nil {
		result.AddError("", "catalog is nil", nil)
		return result
	}

	if c.Version != CurrentVersion {
		result.AddError("version", fmt.Sprintf("unsupported catalog version (want %d)", CurrentVersion), c.Version)
	}

	if len(c.Defaults) == 0 && len(c.Overrides) == 0 {
		result.AddWarning("", "catalog defines no messages", nil)
	}

	placeholders := map[string]bool{}

	for _, reason := range sortedKeys(c.Defaults) {
		checkEntry(result, "", reason, c.Defaults[reason], placeholders)
	}

	for _, key := range sortedKeys(c.Overrides) {
		if !validCode(key) {
			result.Add(validator.Issue{
				Severity: validator.SeverityError,
				Field:    key,
				Message:  "field key must be non-empty and contain no whitespace",
			})
		}
		fields := c.Overrides[key]
		if len(fields) == 0 {
			result.AddWarning(key, "field has no overrides", nil)
			continue
		}
		for _, reason := range sortedKeys(fields) {
			checkEntry(result, key, reason, fields[reason], placeholders)
		}
	}

	for _, name := range sortedKeys(placeholders) {
		result.AddInfo("", fmt.Sprintf("expects parameter %q", name), nil)
	}

	return result
}

func checkEntry(result *validator.Result, key, reason, template string, placeholders map[string]bool) {
	issue := func(s validator.Severity, msg string) {
		result.Add(validator.Issue{Severity: s, Field: key, Reason: reason, Message: msg})
	}

	if !validCode(reason) {
		issue(validator.SeverityError, "reason code must be non-empty and contain no whitespace")
	}
	if strings.TrimSpace(template) == "" {
		issue(validator.SeverityWarning, "template is empty")
	}
	if message.Malformed(template) {
		issue(validator.SeverityWarning, "template contains a malformed placeholder")
	}
	for _, name := range message.Placeholders(template) {
		placeholders[name] = true
	}
}

func validCode(s string) bool {
	return s != "" && !strings.ContainsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
