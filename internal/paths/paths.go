package paths

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName names the vmsg configuration directory.
const AppName = "vmsg"

// ConfigDirEnv overrides the vmsg configuration directory.
const ConfigDirEnv = "VMSG_CONFIG_DIR"

// DefaultDirPerm is the permission for directories vmsg creates.
const DefaultDirPerm = 0o700

// catalogExtensions lists the file extensions recognised as catalogs.
var catalogExtensions = []string{".yaml", ".yml", ".toml", ".json"}

// ErrInvalidPath indicates the provided path is malformed.
var ErrInvalidPath = errors.New("invalid path")

// ConfigHome returns the user's XDG config home (usually ~/.config).
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the vmsg configuration directory.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// CatalogDir returns the directory searched for catalogs when none are
// configured explicitly.
func CatalogDir() string {
	return filepath.Join(ConfigDir(), "catalogs")
}

// EnsureDir creates path and its parents. A zero perm means DefaultDirPerm.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return errors.Wrapf(os.MkdirAll(path, perm), "creating directory %s", path)
}

// IsCatalogFile reports whether path has a recognised catalog extension.
func IsCatalogFile(path string) bool {
	return slices.Contains(catalogExtensions, strings.ToLower(filepath.Ext(path)))
}

// DiscoverCatalogs lists catalog files directly inside dir, sorted by name.
// A missing directory yields no catalogs and no error.
func DiscoverCatalogs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading catalog directory %s", dir)
	}

	var found []string
	for _, e := range entries {
		if e.IsDir() || !IsCatalogFile(e.Name()) {
			continue
		}
		found = append(found, filepath.Join(dir, e.Name()))
	}
	return found, nil
}

// Validate checks that path is syntactically usable. It does not check
// that the path exists.
func Validate(path string) error {
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	if cleaned := filepath.Clean(path); cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}
	return nil
}
