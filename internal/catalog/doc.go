// Package catalog loads, validates, composes and saves message catalogs.
//
// A catalog is the file form of a resolver's configuration: global default
// messages per reason code, and overrides per field key and reason code.
//
//	version: 1
//	defaults:
//	  required: "{{ field }} is required"
//	overrides:
//	  email:
//	    required: "Please enter an email address"
//
// YAML, TOML and JSON are supported; the format follows the file extension.
// Catalog files are decoded directly rather than through viper because key
// and reason codes are case-sensitive.
//
// # Composition
//
// [Compose] mirrors nested validator definitions. The first catalog is the
// outermost one, and every later catalog only fills gaps it leaves:
//
//	cats, err := catalog.LoadAll(ctx, "app.yaml", "shared.yaml")
//	if err != nil {
//		return err
//	}
//	resolver := catalog.Compose(cats)
package catalog
