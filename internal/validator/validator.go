package validator

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/vmsg/internal/message"
)

// Severity represents the impact of a validation issue.
type Severity int

const (
	// SeverityError indicates a blocking validation failure.
	SeverityError Severity = iota
	// SeverityWarning indicates a recommended but non-blocking issue.
	SeverityWarning
	// SeverityInfo indicates an informational note.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return errors.Newf("unknown severity %q", text)
	}
	return nil
}

// Issue represents a single validation problem.
type Issue struct {
	Severity Severity `json:"severity"`
	// Field is the field key the issue applies to (optional).
	Field string `json:"field,omitempty"`
	// Reason is the failure reason code (optional).
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
	// Value is the offending value (optional).
	Value   any               `json:"value,omitempty"`
	Context map[string]string `json:"context,omitempty"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Field != "" {
		fmt.Fprintf(&sb, "field %q", i.Field)
		if i.Reason != "" {
			fmt.Fprintf(&sb, " [%s]", i.Reason)
		}
		sb.WriteString(": ")
	} else if i.Reason != "" {
		fmt.Fprintf(&sb, "[%s] ", i.Reason)
	}
	sb.WriteString(i.Message)
	if i.Value != nil {
		fmt.Fprintf(&sb, " (got %v)", i.Value)
	}
	return sb.String()
}

// Result aggregates validation issues.
type Result struct {
	Issues []Issue `json:"issues"`
}

// FromMessages converts resolved messages into a Result. Each message
// becomes an error issue; order follows the messages.
func FromMessages(m message.Messages) *Result {
	result := &Result{}
	for _, key := range m.Keys() {
		for _, reason := range m.Reasons(key) {
			text, _ := m.Lookup(key, reason)
			result.Add(Issue{
				Severity: SeverityError,
				Field:    key,
				Reason:   reason,
				Message:  text,
			})
		}
	}
	return result
}

// Add appends an issue.
func (r *Result) Add(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

// Merge appends all issues of other.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Issues = append(r.Issues, other.Issues...)
}

// AddError adds an error issue to the result.
func (r *Result) AddError(field, msg string, value any) {
	r.Add(Issue{Severity: SeverityError, Field: field, Message: msg, Value: value})
}

// AddWarning adds a warning issue to the result.
func (r *Result) AddWarning(field, msg string, value any) {
	r.Add(Issue{Severity: SeverityWarning, Field: field, Message: msg, Value: value})
}

// AddInfo adds an info issue to the result.
func (r *Result) AddInfo(field, msg string, value any) {
	r.Add(Issue{Severity: SeverityInfo, Field: field, Message: msg, Value: value})
}

// HasErrors returns true if any issue has SeverityError.
func (r *Result) HasErrors() bool {
	return len(r.filter(SeverityError)) > 0
}

// HasWarnings returns true if any issue has SeverityWarning.
func (r *Result) HasWarnings() bool {
	return len(r.filter(SeverityWarning)) > 0
}

// Errors returns all issues with SeverityError.
func (r *Result) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns all issues with SeverityWarning.
func (r *Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

// Infos returns all issues with SeverityInfo.
func (r *Result) Infos() []Issue {
	return r.filter(SeverityInfo)
}

// Err returns nil if the result has no errors, otherwise an error that
// lists every error issue.
func (r *Result) Err() error {
	errs := r.Errors()
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return errors.Newf("%d issue(s): %s", len(errs), strings.Join(msgs, "; "))
}

func (r *Result) filter(s Severity) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			res = append(res, i)
		}
	}
	return res
}
