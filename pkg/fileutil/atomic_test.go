package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Version  int               `json:"version" yaml:"version" toml:"version"`
	Defaults map[string]string `json:"defaults" yaml:"defaults" toml:"defaults"`
}

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	if err := AtomicWriteFile(path, []byte("first"), 0o600); err != nil {
		t.Fatalf("AtomicWriteFile() error: %v", err)
	}
	if err := AtomicWriteFile(path, []byte("second"), 0o600); err != nil {
		t.Fatalf("AtomicWriteFile() overwrite error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("perm = %v, want 0600", info.Mode().Perm())
	}

	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".vmsg-atomic-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestAtomicWriteFile_DirectoryNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")
	if err := AtomicWriteFile(path, []byte("x"), 0); err == nil {
		t.Error("expected error for missing parent directory")
	}
}

func TestAtomicWriteEncoders(t *testing.T) {
	v := sample{Version: 1, Defaults: map[string]string{"required": "{{ field }} is required"}}

	tests := []struct {
		name   string
		file   string
		write  func(string) error
		decode func([]byte, *sample) error
	}{
		{
			name:   "json",
			file:   "c.json",
			write:  func(p string) error { return AtomicWriteJSON(p, v, 0) },
			decode: func(b []byte, s *sample) error { return json.Unmarshal(b, s) },
		},
		{
			name:   "yaml",
			file:   "c.yaml",
			write:  func(p string) error { return AtomicWriteYAML(p, v, 0) },
			decode: func(b []byte, s *sample) error { return yaml.Unmarshal(b, s) },
		},
		{
			name:   "toml",
			file:   "c.toml",
			write:  func(p string) error { return AtomicWriteTOML(p, v, 0) },
			decode: func(b []byte, s *sample) error { return toml.Unmarshal(b, s) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := tt.write(path); err != nil {
				t.Fatalf("write error: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasSuffix(string(data), "\n") {
				t.Error("expected trailing newline")
			}

			var got sample
			if err := tt.decode(data, &got); err != nil {
				t.Fatalf("decode error: %v\n%s", err, data)
			}
			if got.Version != 1 || got.Defaults["required"] != v.Defaults["required"] {
				t.Errorf("decoded %+v, want %+v", got, v)
			}
		})
	}
}

func TestAtomicWriteYAML_Unmarshalable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := AtomicWriteYAML(path, map[string]any{"fn": func() {}}, 0); err == nil {
		t.Error("expected error for unmarshalable value")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be written on marshal failure")
	}
}
