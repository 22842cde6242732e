// Package message resolves validation-failure messages for vmsg.
//
// A [Resolver] holds three mappings:
//
//   - Overrides: field key → reason code → template. Highest precedence.
//   - Defaults: reason code → template, applied to every field.
//   - Messages: field key → reason code → resolved text, built by [Resolver.Record].
//
// When a failure is recorded, the template is chosen in a fixed order
// (override, then default, then the message supplied by the caller) and the
// parameters are interpolated into it.
//
// # Templates
//
// Templates use {{ name }} markers. Whitespace inside the braces is optional.
// Markers with no matching parameter are left untouched:
//
//	message.Interpolate("{{ field }} is too {{ how }}", map[string]string{"field": "name"})
//	// "name is too {{ how }}"
//
// # Basic Usage
//
//	r := message.New().
//		SetDefaultMessages(map[string]string{"required": "{{ field }} is required"}).
//		SetOverrides(map[string]map[string]string{
//			"email": {"required": "Please enter an email address"},
//		})
//
//	r.Record("name", "required", "missing", map[string]string{"field": "name"})
//	r.Record("email", "required", "missing", nil)
//
//	for _, key := range r.Messages().Keys() {
//		// "name is required", "Please enter an email address"
//	}
//
// # Composition
//
// [Resolver.Merge] folds the configuration of a reused (inner) resolver into
// an outer one. Entries already present in the receiver always win; only
// gaps are filled.
package message
