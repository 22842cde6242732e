package message

import (
	"log/slog"
)

// Source identifies which tier supplied a resolved template.
type Source int

const (
	// SourceFallback means the caller-supplied message was used.
	SourceFallback Source = iota
	// SourceDefault means a global per-reason default was used.
	SourceDefault
	// SourceOverride means a field-and-reason override was used.
	SourceOverride
)

func (s Source) String() string {
	switch s {
	case SourceFallback:
		return "fallback"
	case SourceDefault:
		return "default"
	case SourceOverride:
		return "override"
	default:
		return "unknown"
	}
}

// Resolver records validation-failure messages, applying overrides and
// default messages before interpolating parameters.
//
// A Resolver is not safe for concurrent use. Configure it before a
// validation run starts and use one instance per run, or guard it with a lock.
type Resolver struct {
	messages  Messages
	overrides map[string]map[string]string
	defaults  map[string]string
	logger    *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used to trace message resolution at Debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates an empty Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		overrides: make(map[string]map[string]string),
		defaults:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record resolves the template for (key, reason), interpolates params into
// it and stores the result, replacing any earlier message for the same pair.
// msg is used when neither an override nor a default exists.
func (r *Resolver) Record(key, reason, msg string, params map[string]string) {
	template, source := r.Resolve(key, reason, msg)
	r.messages.set(key, reason, Interpolate(template, params))

	if r.logger != nil {
		r.logger.Debug("recorded message",
			"key", key,
			"reason", reason,
			"source", source.String(),
		)
	}
}

// Resolve returns the raw template Record would use for (key, reason) and
// the tier it came from. No interpolation is applied.
func (r *Resolver) Resolve(key, reason, msg string) (string, Source) {
	if fields, ok := r.overrides[key]; ok {
		if template, ok := fields[reason]; ok {
			return template, SourceOverride
		}
	}
	if template, ok := r.defaults[reason]; ok {
		return template, SourceDefault
	}
	return msg, SourceFallback
}

// GetOverride returns the override for (key, reason), falling back to the
// default message for reason. The boolean is false when neither exists.
// An empty template is a valid override and is reported with true.
func (r *Resolver) GetOverride(reason, key string) (string, bool) {
	template, source := r.Resolve(key, reason, "")
	if source == SourceFallback {
		return "", false
	}
	return template, true
}

// Messages returns a copy of the recorded messages.
func (r *Resolver) Messages() Messages {
	return r.messages.clone()
}

// SetOverrides replaces all overrides with a copy of overrides.
func (r *Resolver) SetOverrides(overrides map[string]map[string]string) *Resolver {
	r.overrides = copyOverrides(overrides)
	return r
}

// SetDefaultMessages replaces all default messages with a copy of defaults.
func (r *Resolver) SetDefaultMessages(defaults map[string]string) *Resolver {
	r.defaults = copyDefaults(defaults)
	return r
}

// Overrides returns a copy of the configured overrides.
func (r *Resolver) Overrides() map[string]map[string]string {
	return copyOverrides(r.overrides)
}

// Defaults returns a copy of the configured default messages.
func (r *Resolver) Defaults() map[string]string {
	return copyDefaults(r.defaults)
}

// Merge copies the configuration of other into r without replacing anything
// r already has. Defaults are filled per reason and overrides per
// (key, reason) pair. Recorded messages are not merged.
func (r *Resolver) Merge(other *Resolver) {
	if other == nil || other == r {
		return
	}
	if r.defaults == nil {
		r.defaults = make(map[string]string, len(other.defaults))
	}
	if r.overrides == nil {
		r.overrides = make(map[string]map[string]string, len(other.overrides))
	}

	for reason, template := range other.defaults {
		if _, exists := r.defaults[reason]; !exists {
			r.defaults[reason] = template
		}
	}

	for key, fields := range other.overrides {
		dst, ok := r.overrides[key]
		if !ok {
			dst = make(map[string]string, len(fields))
			r.overrides[key] = dst
		}
		for reason, template := range fields {
			if _, exists := dst[reason]; !exists {
				dst[reason] = template
			}
		}
	}
}

// Reset discards all recorded messages. Overrides and defaults are kept.
func (r *Resolver) Reset() *Resolver {
	r.messages = Messages{}
	return r
}

func copyOverrides(src map[string]map[string]string) map[string]map[string]string {
	dst := make(map[string]map[string]string, len(src))
	for key, fields := range src {
		inner := make(map[string]string, len(fields))
		for reason, template := range fields {
			inner[reason] = template
		}
		dst[key] = inner
	}
	return dst
}

func copyDefaults(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for reason, template := range src {
		dst[reason] = template
	}
	return dst
}
