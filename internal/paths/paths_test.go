package paths

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestConfigDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(ConfigDirEnv, dir)
		if got := ConfigDir(); got != dir {
			t.Errorf("ConfigDir() = %q, want %q", got, dir)
		}
		if got := CatalogDir(); got != filepath.Join(dir, "catalogs") {
			t.Errorf("CatalogDir() = %q, want %q", got, filepath.Join(dir, "catalogs"))
		}
	})

	t.Run("xdg default", func(t *testing.T) {
		t.Setenv(ConfigDirEnv, "")
		want := filepath.Join(ConfigHome(), AppName)
		if got := ConfigDir(); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})
}

func TestIsCatalogFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"base.yaml", true},
		{"base.YML", true},
		{"dir/base.toml", true},
		{"base.json", true},
		{"base.txt", false},
		{"yaml", false},
	}
	for _, tt := range tests {
		if got := IsCatalogFile(tt.path); got != tt.want {
			t.Errorf("IsCatalogFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestDiscoverCatalogs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.toml", "a.yaml", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := EnsureDir(filepath.Join(dir, "sub.yaml"), 0); err != nil {
		t.Fatal(err)
	}

	got, err := DiscoverCatalogs(dir)
	if err != nil {
		t.Fatalf("DiscoverCatalogs() error: %v", err)
	}
	want := []string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.toml")}
	if !slices.Equal(got, want) {
		t.Errorf("DiscoverCatalogs() = %v, want %v", got, want)
	}

	missing, err := DiscoverCatalogs(filepath.Join(dir, "nope"))
	if err != nil || missing != nil {
		t.Errorf("DiscoverCatalogs(missing) = %v, %v; want nil, nil", missing, err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"/tmp/catalog.yaml", false},
		{"relative/catalog.yaml", false},
		{".", true},
		{"", true},
		{"bad\x00path", true},
	}
	for _, tt := range tests {
		if err := Validate(tt.path); (err != nil) != tt.wantErr {
			t.Errorf("Validate(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}
