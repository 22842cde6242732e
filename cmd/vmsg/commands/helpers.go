package commands

import (
	"context"
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/vmsg/internal/catalog"
	"github.com/thoreinstein/vmsg/internal/config"
	"github.com/thoreinstein/vmsg/internal/errors"
	"github.com/thoreinstein/vmsg/internal/logging"
	"github.com/thoreinstein/vmsg/internal/message"
	"github.com/thoreinstein/vmsg/internal/paths"
)

// catalogPaths picks the catalogs to compose: explicit arguments, then
// --catalog, then the config file, then the catalogs directory.
func catalogPaths(args []string) ([]string, error) {
	switch {
	case len(args) > 0:
		return args, nil
	case len(catalogFlag) > 0:
		return catalogFlag, nil
	case cfg != nil && len(cfg.Catalogs) > 0:
		return cfg.Catalogs, nil
	}

	found, err := paths.DiscoverCatalogs(paths.CatalogDir())
	if err != nil {
		return nil, errors.NewSystemError(err, "")
	}
	return found, nil
}

// loadCatalogs loads the catalogs picked by catalogPaths.
func loadCatalogs(ctx context.Context, args []string) ([]*catalog.Catalog, error) {
	ps, err := catalogPaths(args)
	if err != nil {
		return nil, err
	}
	if len(ps) == 0 {
		logging.FromContext(ctx).Info("no catalogs configured, using failure messages as-is")
		return nil, nil
	}

	catalogs, err := catalog.LoadAll(ctx, ps...)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return nil, errors.NewUserError(err, "Check the --catalog paths or the catalogs list in config.yaml")
		}
		return nil, errors.NewUserError(err, "Run: vmsg catalog validate <file>")
	}
	return catalogs, nil
}

// loadResolver composes the selected catalogs into a resolver that logs
// through the context logger.
func loadResolver(ctx context.Context, args []string) (*message.Resolver, error) {
	catalogs, err := loadCatalogs(ctx, args)
	if err != nil {
		return nil, err
	}
	return catalog.Compose(catalogs, message.WithLogger(logging.FromContext(ctx))), nil
}

// outputFormat resolves --json/--yaml against the configured default.
func outputFormat(asJSON, asYAML bool) string {
	switch {
	case asJSON:
		return config.OutputJSON
	case asYAML:
		return config.OutputYAML
	case cfg != nil && cfg.Output != "":
		return cfg.Output
	default:
		return config.OutputText
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "encoding JSON")
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encoding YAML")
	}
	return errors.Wrap(enc.Close(), "encoding YAML")
}
