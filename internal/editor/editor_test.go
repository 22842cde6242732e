package editor

import (
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDetectEditor(t *testing.T) {
	tests := []struct {
		name   string
		vmsg   string
		editor string
		visual string
		want   string
	}{
		{"vmsg editor wins", "hx", "nvim", "code", "hx"},
		{"EDITOR before VISUAL", "", "nvim", "code", "nvim"},
		{"VISUAL", "", "", "code", "code"},
		{"whitespace treated as unset", "  ", "", "vscode", "vscode"},
		{"arguments kept", "", "code --wait", "", "code --wait"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvEditor, tt.vmsg)
			t.Setenv("EDITOR", tt.editor)
			t.Setenv("VISUAL", tt.visual)

			if got := detectEditor(); got != tt.want {
				t.Errorf("detectEditor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectEditor_Fallback(t *testing.T) {
	t.Setenv(EnvEditor, "")
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")

	got := detectEditor()
	if _, err := exec.LookPath("nano"); err == nil {
		if got != "nano" {
			t.Errorf("detectEditor() = %q, want nano", got)
		}
	} else if got != "vi" {
		t.Errorf("detectEditor() = %q, want vi", got)
	}
}

func TestOpen(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX true/false")
	}
	path := filepath.Join(t.TempDir(), "messages.yaml")

	t.Setenv(EnvEditor, "true --ignored")
	if err := Open(t.Context(), path, Streams{}); err != nil {
		t.Errorf("Open() with succeeding editor: %v", err)
	}

	t.Setenv(EnvEditor, "false")
	if err := Open(t.Context(), path, Streams{}); err == nil {
		t.Error("Open() with failing editor: expected error")
	}
}
