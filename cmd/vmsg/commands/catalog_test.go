package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/vmsg/internal/catalog"
	"github.com/thoreinstein/vmsg/internal/errors"
	"github.com/thoreinstein/vmsg/internal/message"
)

func TestCatalogEntries(t *testing.T) {
	r := message.New().
		SetDefaultMessages(map[string]string{"required": "req", "min": "min"}).
		SetOverrides(map[string]map[string]string{
			"name":  {"required": "name req"},
			"email": {"required": "email req", "format": "email fmt"},
		})

	got := catalogEntries(r)
	want := []catalogEntry{
		{Reason: "min", Template: "min"},
		{Reason: "required", Template: "req"},
		{Key: "email", Reason: "format", Template: "email fmt"},
		{Key: "email", Reason: "required", Template: "email req"},
		{Key: "name", Reason: "required", Template: "name req"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	if got[0].field() != "*" || got[0].source() != message.SourceDefault {
		t.Errorf("default entry field/source = %q/%v", got[0].field(), got[0].source())
	}
	if got[2].field() != "email" || got[2].source() != message.SourceOverride {
		t.Errorf("override entry field/source = %q/%v", got[2].field(), got[2].source())
	}
}

func TestDescribeEntry(t *testing.T) {
	got := describeEntry(catalogEntry{Key: "age", Reason: "min", Template: "at least {{ min }} {{ unit"})
	for _, want := range []string{"Field:    age", "Reason:   min", "Source:   override", "Params:   min", "unbalanced"} {
		if !strings.Contains(got, want) {
			t.Errorf("describeEntry() missing %q:\n%s", want, got)
		}
	}
}

func TestRunCatalogValidate(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantErr  bool
		contains string
	}{
		{
			name:     "valid catalog",
			file:     "ok.yaml",
			content:  testCatalog,
			contains: "Validation passed",
		},
		{
			name:     "bad version",
			file:     "v2.yaml",
			content:  "version: 2\ndefaults:\n  required: x\n",
			wantErr:  true,
			contains: "version",
		},
		{
			name:     "malformed file",
			file:     "broken.json",
			content:  `{"defaults": [1, 2]}`,
			wantErr:  true,
			contains: "catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetState(t)
			path := writeFile(t, t.TempDir(), tt.file, tt.content)

			var out bytes.Buffer
			err := runCatalogValidate(&out, path)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrValidationFailed) {
					t.Errorf("err = %v, want ErrValidationFailed", err)
				}
			} else if err != nil {
				t.Fatalf("runCatalogValidate() error = %v", err)
			}
			if !strings.Contains(out.String(), tt.contains) {
				t.Errorf("output missing %q:\n%s", tt.contains, out.String())
			}
		})
	}
}

func TestRunCatalogValidate_JSON(t *testing.T) {
	resetState(t)
	catalogValidateJSON = true
	path := writeFile(t, t.TempDir(), "ok.yaml", testCatalog)

	var out bytes.Buffer
	if err := runCatalogValidate(&out, path); err != nil {
		t.Fatalf("runCatalogValidate() error = %v", err)
	}

	var report struct {
		Issues []struct {
			Severity string `json:"severity"`
		} `json:"issues"`
	}
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	for _, i := range report.Issues {
		if i.Severity == "error" {
			t.Errorf("unexpected error issue in %s", out.String())
		}
	}
}

func TestRunCatalogValidate_NotFound(t *testing.T) {
	resetState(t)

	err := runCatalogValidate(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRunCatalogMerge(t *testing.T) {
	resetState(t)
	dir := t.TempDir()
	app := writeFile(t, dir, "app.yaml", "overrides:\n  email:\n    required: app email\ndefaults:\n  required: app required\n")
	shared := writeFile(t, dir, "shared.yaml", testCatalog)
	output := filepath.Join(dir, "combined.toml")

	var out bytes.Buffer
	if err := runCatalogMerge(t.Context(), &out, []string{app, shared}, output); err != nil {
		t.Fatalf("runCatalogMerge() error = %v", err)
	}
	if !strings.Contains(out.String(), "Merged 2 catalog(s)") {
		t.Errorf("output = %q", out.String())
	}

	merged, err := catalog.Load(output)
	if err != nil {
		t.Fatalf("loading merged catalog: %v", err)
	}
	if got := merged.Defaults["required"]; got != "app required" {
		t.Errorf("defaults.required = %q, want app's", got)
	}
	if got := merged.Defaults["min"]; got != "must be at least {{ min }}" {
		t.Errorf("defaults.min = %q, want shared's", got)
	}
	if got := merged.Overrides["email"]["required"]; got != "app email" {
		t.Errorf("overrides.email.required = %q, want app's", got)
	}
}

func TestRunCatalogMerge_Stdout(t *testing.T) {
	resetState(t)
	path := writeFile(t, t.TempDir(), "messages.json", `{"version": 1, "defaults": {"required": "needed"}}`)

	var out bytes.Buffer
	if err := runCatalogMerge(t.Context(), &out, []string{path}, ""); err != nil {
		t.Fatalf("runCatalogMerge() error = %v", err)
	}
	if want := "version: 1\ndefaults:\n  required: needed\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunCatalogShow(t *testing.T) {
	resetState(t)
	path := writeFile(t, t.TempDir(), "messages.yaml", testCatalog)

	var out bytes.Buffer
	if err := runCatalogShow(t.Context(), &out, []string{path}); err != nil {
		t.Fatalf("runCatalogShow() error = %v", err)
	}

	s := out.String()
	for _, want := range []string{"FIELD", "TEMPLATE", "Please enter your email address", "{{ field }} is required", "email"} {
		if !strings.Contains(s, want) {
			t.Errorf("table missing %q:\n%s", want, s)
		}
	}
}

func TestRunCatalogShow_Empty(t *testing.T) {
	resetState(t)

	var out bytes.Buffer
	if err := runCatalogShow(t.Context(), &out, nil); err != nil {
		t.Fatalf("runCatalogShow() error = %v", err)
	}
	if out.String() != "No messages defined.\n" {
		t.Errorf("output = %q", out.String())
	}
}
