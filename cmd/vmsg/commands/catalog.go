package commands

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/vmsg/internal/message"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and combine message catalogs",
	Long: `A catalog is a YAML, TOML or JSON file with default messages per reason
code and overrides per field key and reason code:

  version: 1
  defaults:
    required: "{{ field }} is required"
  overrides:
    email:
      required: "Please enter your email address"

When several catalogs are given, earlier catalogs win.`,
	Example: `  vmsg catalog validate messages.yaml
  vmsg catalog show app.yaml shared.yaml
  vmsg catalog merge app.yaml shared.yaml -o combined.toml`,
}

// catalogEntry is one template of a composed catalog. Key is empty for
// default messages.
type catalogEntry struct {
	Key      string
	Reason   string
	Template string
}

// field returns the display name of the entry's field.
func (e catalogEntry) field() string {
	if e.Key == "" {
		return "*"
	}
	return e.Key
}

// source names the tier that holds the entry.
func (e catalogEntry) source() message.Source {
	if e.Key == "" {
		return message.SourceDefault
	}
	return message.SourceOverride
}

// catalogEntries lists defaults sorted by reason, then overrides sorted by
// key and reason.
func catalogEntries(r *message.Resolver) []catalogEntry {
	defaults := r.Defaults()
	overrides := r.Overrides()

	entries := make([]catalogEntry, 0, len(defaults)+len(overrides))
	for _, reason := range sortedKeys(defaults) {
		entries = append(entries, catalogEntry{Reason: reason, Template: defaults[reason]})
	}
	for _, key := range sortedKeys(overrides) {
		fields := overrides[key]
		for _, reason := range sortedKeys(fields) {
			entries = append(entries, catalogEntry{Key: key, Reason: reason, Template: fields[reason]})
		}
	}
	return entries
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
