package config

import (
	"errors"
	"slices"
	"strconv"

	"github.com/thoreinstein/vmsg/internal/paths"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not 1.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidOutput indicates an unknown output format.
	ErrInvalidOutput = errors.New("invalid output format")

	// ErrInvalidCatalog indicates a catalog path that cannot be used.
	ErrInvalidCatalog = errors.New("invalid catalog path")
)

var validOutputs = []string{OutputText, OutputJSON, OutputYAML}

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, &FieldError{Field: "version", Value: strconv.Itoa(cfg.Version), Err: ErrUnsupportedVersion})
	}

	if !slices.Contains(validOutputs, cfg.Output) {
		errs = append(errs, &FieldError{Field: "output", Value: cfg.Output, Err: ErrInvalidOutput})
	}

	for _, c := range cfg.Catalogs {
		if err := paths.Validate(c); err != nil || !paths.IsCatalogFile(c) {
			errs = append(errs, &FieldError{Field: "catalogs", Value: c, Err: ErrInvalidCatalog})
		}
	}

	return errs
}

// FieldError reports an invalid value for one configuration field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
