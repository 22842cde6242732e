package message

import (
	"regexp"
	"strings"
)

// placeholderRegex matches {{ name }} markers. The name may not contain
// whitespace or a closing brace.
var placeholderRegex = regexp.MustCompile(`\{\{\s*([^\s}]+)\s*\}\}`)

// Interpolate replaces every {{ name }} marker in template with params[name].
// Markers whose name is not in params are kept verbatim. Substituted values
// are never scanned again.
func Interpolate(template string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	matches := placeholderRegex.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template
	}

	var sb strings.Builder
	sb.Grow(len(template))

	last := 0
	for _, m := range matches {
		// m[0]:m[1] is the whole marker, m[2]:m[3] the name
		value, ok := params[template[m[2]:m[3]]]
		if !ok {
			continue
		}
		sb.WriteString(template[last:m[0]])
		sb.WriteString(value)
		last = m[1]
	}
	sb.WriteString(template[last:])

	return sb.String()
}

// Placeholders returns the placeholder names used in template, in order of
// first appearance and without duplicates.
func Placeholders(template string) []string {
	matches := placeholderRegex.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		names = append(names, m[1])
	}
	return names
}

// Malformed reports whether template contains "{{" or "}}" outside a
// well-formed placeholder. Such text is kept literally by Interpolate.
func Malformed(template string) bool {
	rest := placeholderRegex.ReplaceAllString(template, "")
	return strings.Contains(rest, "{{") || strings.Contains(rest, "}}")
}
