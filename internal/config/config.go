package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/vmsg/internal/paths"
)

// EnvPrefix prefixes environment variable overrides.
const EnvPrefix = "VMSG"

// Output formats accepted by the output setting.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version  int      `mapstructure:"version" yaml:"version"`
	Output   string   `mapstructure:"output" yaml:"output"`
	Catalogs []string `mapstructure:"catalogs" yaml:"catalogs,omitempty"`

	// File is the config file that was read, empty when defaults are used.
	File string `mapstructure:"-" yaml:"-"`
}

// Init resets viper and installs vmsg's search paths, environment binding
// and defaults. Call it once before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("output", OutputText)
	viper.SetDefault("catalogs", []string{})
}

// Load reads the configuration. An explicit path must exist; without one,
// a missing config file means defaults are used.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// implicit load, defaults apply
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	cfg.File = viper.ConfigFileUsed()
	cfg.Catalogs = resolveCatalogs(cfg.File, cfg.Catalogs)

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// resolveCatalogs makes relative catalog paths relative to the config file
// directory and expands a leading ~.
func resolveCatalogs(configFile string, catalogs []string) []string {
	base := "."
	if configFile != "" {
		base = filepath.Dir(configFile)
	}

	out := make([]string, 0, len(catalogs))
	for _, c := range catalogs {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(c, "~/"); ok {
			if home, err := os.UserHomeDir(); err == nil {
				c = filepath.Join(home, rest)
			}
		}
		if !filepath.IsAbs(c) {
			c = filepath.Join(base, c)
		}
		out = append(out, c)
	}
	return out
}
