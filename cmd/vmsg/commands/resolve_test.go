package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/thoreinstein/vmsg/internal/errors"
	"github.com/thoreinstein/vmsg/internal/failure"
)

const testFailures = `[
  {"key": "email", "reason": "required", "message": "email missing"},
  {"key": "name", "reason": "required", "message": "name missing", "params": {"field": "Name"}},
  {"key": "age", "reason": "min", "message": "too small", "params": {"min": "18"}},
  {"key": "age", "reason": "custom", "message": "{{ who }} is {{ what }}", "params": {"who": "Age"}}
]`

func TestRunResolve_JSON(t *testing.T) {
	resetState(t)
	dir := t.TempDir()
	catalogFlag = []string{writeFile(t, dir, "messages.yaml", testCatalog)}
	failures := writeFile(t, dir, "failures.json", testFailures)
	resolveJSON = true

	var out bytes.Buffer
	err := runResolve(t.Context(), &out, nil, failures)
	if errors.Code(err) != errors.ExitUser {
		t.Fatalf("Code() = %d, want %d (err %v)", errors.Code(err), errors.ExitUser, err)
	}
	if !errors.Is(err, errors.ErrValidationFailed) {
		t.Errorf("err = %v, want ErrValidationFailed", err)
	}

	var got map[string]map[string]string
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out.String())
	}

	want := map[string]map[string]string{
		"email": {"required": "Please enter your email address"},
		"name":  {"required": "Name is required"},
		"age": {
			"min":    "must be at least 18",
			"custom": "Age is {{ what }}",
		},
	}
	for key, reasons := range want {
		for reason, text := range reasons {
			if got[key][reason] != text {
				t.Errorf("%s/%s = %q, want %q", key, reason, got[key][reason], text)
			}
		}
	}

	// recording order is kept
	s := out.String()
	if !(strings.Index(s, `"email"`) < strings.Index(s, `"name"`) && strings.Index(s, `"name"`) < strings.Index(s, `"age"`)) {
		t.Errorf("keys out of order:\n%s", s)
	}
}

func TestRunResolve_StdinYAML(t *testing.T) {
	resetState(t)
	resolveInputFormat = "yaml"
	resolveYAML = true

	in := strings.NewReader("- key: email\n  reason: format\n  message: \"{{ value }} is not an email\"\n  params:\n    value: bob\n")

	var out bytes.Buffer
	err := runResolve(t.Context(), &out, in, "-")
	if !errors.Is(err, errors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
	if want := "email:\n  format: bob is not an email\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunResolve_NoFailures(t *testing.T) {
	resetState(t)

	var out bytes.Buffer
	if err := runResolve(t.Context(), &out, strings.NewReader("[]"), "-"); err != nil {
		t.Fatalf("runResolve() error = %v", err)
	}
	if !strings.Contains(out.String(), "Validation passed") {
		t.Errorf("output = %q, want pass message", out.String())
	}
}

func TestRunResolve_TextReport(t *testing.T) {
	resetState(t)
	dir := t.TempDir()
	catalogFlag = []string{writeFile(t, dir, "messages.yaml", testCatalog)}

	var out bytes.Buffer
	err := runResolve(t.Context(), &out, strings.NewReader(testFailures), "-")
	if !errors.Is(err, errors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
	for _, want := range []string{"4 error(s)", "Please enter your email address", "[required]", "Name is required"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		path    string
		wantErr error
	}{
		{
			name:    "missing key",
			input:   `[{"key": "", "reason": "required", "message": "x"}]`,
			path:    "-",
			wantErr: failure.ErrInvalidFailure,
		},
		{
			name:    "malformed document",
			input:   `{"key": "email"}`,
			path:    "-",
			wantErr: failure.ErrDecode,
		},
		{
			name:    "missing file",
			path:    "/does/not/exist.json",
			wantErr: errors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetState(t)

			var out bytes.Buffer
			err := runResolve(t.Context(), &out, strings.NewReader(tt.input), tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if errors.Code(err) != errors.ExitUser {
				t.Errorf("Code() = %d, want %d", errors.Code(err), errors.ExitUser)
			}
		})
	}
}

func TestRunResolve_MissingCatalog(t *testing.T) {
	resetState(t)
	catalogFlag = []string{"/does/not/exist.yaml"}

	err := runResolve(t.Context(), &bytes.Buffer{}, strings.NewReader(testFailures), "-")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestResolveCommand_Execute(t *testing.T) {
	resetState(t)
	dir := t.TempDir()
	cat := writeFile(t, dir, "messages.toml", "version = 1\n\n[defaults]\nrequired = \"needed\"\n")
	failures := writeFile(t, dir, "failures.json", `[{"key": "email", "reason": "required", "message": "x"}]`)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"resolve", failures, "--catalog", cat, "--json"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	if errors.Code(err) != errors.ExitUser {
		t.Fatalf("Code() = %d, want %d (err %v)", errors.Code(err), errors.ExitUser, err)
	}
	if !strings.Contains(out.String(), `"required": "needed"`) {
		t.Errorf("output = %q", out.String())
	}
}
