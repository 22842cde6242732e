package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	vmsgerrors "github.com/thoreinstein/vmsg/internal/errors"
	"github.com/thoreinstein/vmsg/internal/logging"
	"github.com/thoreinstein/vmsg/internal/message"
	"github.com/thoreinstein/vmsg/pkg/fileutil"
)

// CurrentVersion is the only catalog schema version understood.
const CurrentVersion = 1

// Format is a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

var (
	// ErrUnsupportedFormat indicates a file extension with no known encoding.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")

	// ErrParse indicates a catalog file could not be decoded.
	ErrParse = errors.New("malformed catalog")
)

// Catalog holds default messages and per-field overrides.
type Catalog struct {
	Version   int                          `json:"version" yaml:"version" toml:"version"`
	Defaults  map[string]string            `json:"defaults,omitempty" yaml:"defaults,omitempty" toml:"defaults,omitempty"`
	Overrides map[string]map[string]string `json:"overrides,omitempty" yaml:"overrides,omitempty" toml:"overrides,omitempty"`

	// Path is the file the catalog was loaded from, if any.
	Path string `json:"-" yaml:"-" toml:"-"`
}

// New returns an empty catalog at CurrentVersion.
func New() *Catalog {
	return &Catalog{Version: CurrentVersion}
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "%q", path)
	}
}

// Parse decodes a catalog. Unknown top-level fields are rejected. A missing
// version is treated as CurrentVersion.
func Parse(data []byte, format Format) (*Catalog, error) {
	c := &Catalog{}

	var err error
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(c)
		if errors.Is(err, io.EOF) {
			// empty document
			err = nil
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(c)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(c)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	if err != nil {
		return nil, errors.Mark(err, ErrParse)
	}

	if c.Version == 0 {
		c.Version = CurrentVersion
	}
	return c, nil
}

// Load reads and parses the catalog at path.
func Load(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(vmsgerrors.ErrNotFound, "catalog %s", path)
		}
		return nil, errors.Wrapf(err, "reading catalog %s", path)
	}

	c, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing catalog %s", path)
	}
	c.Path = path
	return c, nil
}

// LoadAll loads every path concurrently. The result keeps argument order.
// The first failure cancels the remaining loads and is returned.
func LoadAll(ctx context.Context, paths ...string) ([]*Catalog, error) {
	logger := logging.FromContext(ctx)
	catalogs := make([]*Catalog, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := Load(path)
			if err != nil {
				return err
			}
			logger.Debug("loaded catalog",
				"path", path,
				"defaults", len(c.Defaults),
				"overrides", len(c.Overrides),
			)
			catalogs[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return catalogs, nil
}

// Save writes c to path atomically in the format implied by its extension.
func Save(path string, c *Catalog) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	switch format {
	case FormatTOML:
		err = fileutil.AtomicWriteTOML(path, c, 0)
	case FormatJSON:
		err = fileutil.AtomicWriteJSON(path, c, 0)
	default:
		err = fileutil.AtomicWriteYAML(path, c, 0)
	}
	return errors.Wrapf(err, "writing catalog %s", path)
}

// Apply replaces r's overrides and defaults with the catalog's.
func (c *Catalog) Apply(r *message.Resolver) *message.Resolver {
	return r.SetOverrides(c.Overrides).SetDefaultMessages(c.Defaults)
}

// Resolver returns a new resolver configured from the catalog.
func (c *Catalog) Resolver(opts ...message.Option) *message.Resolver {
	return c.Apply(message.New(opts...))
}

// Compose builds a resolver from catalogs, outermost first. Each later
// catalog only contributes entries the earlier ones do not define.
// Nil catalogs are skipped.
func Compose(catalogs []*Catalog, opts ...message.Option) *message.Resolver {
	r := message.New(opts...)
	for _, c := range catalogs {
		if c == nil {
			continue
		}
		r.Merge(c.Resolver())
	}
	return r
}

// FromResolver snapshots the configuration of r as a catalog.
func FromResolver(r *message.Resolver) *Catalog {
	c := New()
	if defaults := r.Defaults(); len(defaults) > 0 {
		c.Defaults = defaults
	}
	if overrides := r.Overrides(); len(overrides) > 0 {
		c.Overrides = overrides
	}
	return c
}
