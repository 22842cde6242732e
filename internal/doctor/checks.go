package doctor

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/thoreinstein/vmsg/internal/catalog"
	"github.com/thoreinstein/vmsg/internal/paths"
)

// ConfigCheck reports whether the configuration file loaded.
type ConfigCheck struct {
	file string
	err  error
}

var _ Check = (*ConfigCheck)(nil)

// NewConfigCheck creates a check for a config load outcome. file is the
// config file used, empty when defaults apply.
func NewConfigCheck(file string, err error) *ConfigCheck {
	return &ConfigCheck{file: file, err: err}
}

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string {
	return "config-file"
}

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string {
	return "config"
}

// Run executes the check.
func (c *ConfigCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	switch {
	case c.err != nil:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("configuration is invalid: %v", c.err)
		result.FixHint = "Run: vmsg config"
	case c.file == "":
		result.Status = SeverityInfo
		result.Message = "no config file found, using defaults"
		result.Details = map[string]any{
			"searched": []string{".", paths.ConfigDir()},
		}
	default:
		result.Status = SeverityPass
		result.Message = "loaded " + c.file
	}
	return result
}

// CatalogCheck loads and validates every configured catalog.
type CatalogCheck struct {
	paths  []string
	loaded []*catalog.Catalog
}

var _ Check = (*CatalogCheck)(nil)

// NewCatalogCheck creates a check for the given catalog paths, in
// precedence order.
func NewCatalogCheck(paths []string) *CatalogCheck {
	return &CatalogCheck{paths: paths}
}

// Name returns the unique identifier for this check.
func (c *CatalogCheck) Name() string {
	return "catalogs"
}

// Category returns the grouping for this check.
func (c *CatalogCheck) Category() string {
	return "catalog"
}

// Run executes the check.
func (c *CatalogCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}
	c.loaded = nil

	if len(c.paths) == 0 {
		result.Status = SeverityWarning
		result.Message = "no catalogs configured, failure messages are used as-is"
		result.FixHint = "Add catalogs to config.yaml or place them in " + paths.CatalogDir()
		return result
	}

	status := SeverityPass
	var errCount, warnCount int
	perCatalog := make([]map[string]any, 0, len(c.paths))

	for _, p := range c.paths {
		entry := map[string]any{"path": p}
		perCatalog = append(perCatalog, entry)

		cat, err := catalog.Load(p)
		if err != nil {
			entry["error"] = err.Error()
			errCount++
			status = SeverityError
			continue
		}
		c.loaded = append(c.loaded, cat)

		v := catalog.Validate(cat)
		entry["errors"] = len(v.Errors())
		entry["warnings"] = len(v.Warnings())
		errCount += len(v.Errors())
		warnCount += len(v.Warnings())
		switch {
		case v.HasErrors():
			status = worst(status, SeverityError)
		case v.HasWarnings():
			status = worst(status, SeverityWarning)
		}
	}

	result.Status = status
	result.Details = map[string]any{"catalogs": perCatalog}
	switch status {
	case SeverityPass:
		result.Message = fmt.Sprintf("%d catalog(s) valid", len(c.paths))
	default:
		result.Message = fmt.Sprintf("%d catalog(s): %d error(s), %d warning(s)", len(c.paths), errCount, warnCount)
		result.FixHint = "Run: vmsg catalog validate <file>"
	}
	return result
}

// Loaded returns the catalogs the last Run loaded successfully, in order.
func (c *CatalogCheck) Loaded() []*catalog.Catalog {
	return c.loaded
}

// ShadowCheck lists catalog entries hidden by an earlier catalog. It reads
// the catalogs loaded by a CatalogCheck, which must run first.
type ShadowCheck struct {
	source *CatalogCheck
}

var _ Check = (*ShadowCheck)(nil)

// NewShadowCheck creates a check over the catalogs loaded by source.
func NewShadowCheck(source *CatalogCheck) *ShadowCheck {
	return &ShadowCheck{source: source}
}

// Name returns the unique identifier for this check.
func (c *ShadowCheck) Name() string {
	return "shadowed-entries"
}

// Category returns the grouping for this check.
func (c *ShadowCheck) Category() string {
	return "catalog"
}

// Run executes the check.
func (c *ShadowCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category(), Status: SeverityPass}

	shadowed := Shadowed(c.source.Loaded())
	if len(shadowed) == 0 {
		result.Message = "no catalog entry is shadowed"
		return result
	}

	result.Status = SeverityInfo
	result.Message = fmt.Sprintf("%d catalog entry(ies) shadowed by an earlier catalog", len(shadowed))
	result.Details = map[string]any{"shadowed": shadowed}
	return result
}

// Shadowed describes every default and override that a later catalog
// defines but an earlier catalog already provides.
func Shadowed(catalogs []*catalog.Catalog) []string {
	defaultOwner := map[string]string{}
	overrideOwner := map[string]string{}
	var out []string

	for _, cat := range catalogs {
		name := catalogName(cat)
		for _, reason := range sortedKeys(cat.Defaults) {
			if owner, ok := defaultOwner[reason]; ok {
				out = append(out, fmt.Sprintf("default %q in %s (defined by %s)", reason, name, owner))
				continue
			}
			defaultOwner[reason] = name
		}
		for _, key := range sortedKeys(cat.Overrides) {
			for _, reason := range sortedKeys(cat.Overrides[key]) {
				id := key + "\x00" + reason
				if owner, ok := overrideOwner[id]; ok {
					out = append(out, fmt.Sprintf("override %s [%s] in %s (defined by %s)", key, reason, name, owner))
					continue
				}
				overrideOwner[id] = name
			}
		}
	}
	return out
}

func catalogName(c *catalog.Catalog) string {
	if c.Path == "" {
		return "<catalog>"
	}
	return filepath.Base(c.Path)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
