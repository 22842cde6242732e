// Package failure decodes validation failures produced by an external
// validation engine and records them into a message.Resolver.
//
// A failure document is a JSON array or YAML sequence:
//
//	- key: email
//	  reason: required
//	  message: "{{ field }} must be set"
//	  params:
//	    field: email
package failure

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/vmsg/internal/message"
	"github.com/thoreinstein/vmsg/internal/validator"
	"github.com/thoreinstein/vmsg/pkg/fileutil"
)

// Format is a failure document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrInvalidFailure indicates a failure violates the input contract.
	ErrInvalidFailure = errors.New("invalid failure")

	// ErrDecode indicates a failure document could not be decoded.
	ErrDecode = errors.New("malformed failure document")
)

// Failure is one failed validation rule.
type Failure struct {
	// Key identifies the field that failed.
	Key string `json:"key" yaml:"key"`
	// Reason is the code of the rule that failed.
	Reason string `json:"reason" yaml:"reason"`
	// Message is the validator's own template, used when no override or
	// default exists.
	Message string `json:"message" yaml:"message"`
	// Params are substituted into the resolved template.
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}

// FormatFromPath guesses the document format from the file extension.
// Anything that is not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

// Decode reads a failure document from r.
func Decode(r io.Reader, format Format) ([]Failure, error) {
	data, err := fileutil.ReadWithLimit(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var fs []Failure
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&fs)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&fs)
	default:
		return nil, errors.Newf("unsupported failure format %q", format)
	}
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decoding failures"), ErrDecode)
	}
	return fs, nil
}

// Check verifies the input contract: every failure needs a non-empty key
// and reason. Problems are reported as error issues carrying the index.
func Check(fs []Failure) *validator.Result {
	result := &validator.Result{}
	for i, f := range fs {
		if f.Key == "" {
			result.Add(validator.Issue{
				Severity: validator.SeverityError,
				Reason:   f.Reason,
				Message:  "failure has no field key",
				Value:    i,
			})
		}
		if f.Reason == "" {
			result.Add(validator.Issue{
				Severity: validator.SeverityError,
				Field:    f.Key,
				Message:  "failure has no reason code",
				Value:    i,
			})
		}
	}
	return result
}

// RecordAll records every failure into r in order. If any failure breaks
// the input contract nothing is recorded and the returned error wraps
// ErrInvalidFailure.
func RecordAll(r *message.Resolver, fs []Failure) error {
	if err := Check(fs).Err(); err != nil {
		return errors.Mark(err, ErrInvalidFailure)
	}
	for _, f := range fs {
		r.Record(f.Key, f.Reason, f.Message, f.Params)
	}
	return nil
}
