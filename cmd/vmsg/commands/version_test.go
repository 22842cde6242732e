package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/thoreinstein/vmsg/cmd"
)

func TestVersionCommand(t *testing.T) {
	resetState(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out.String())
	}
	if want := "vmsg version " + cmd.Version; lines[0] != want {
		t.Errorf("line 1 = %q, want %q", lines[0], want)
	}
	if !strings.Contains(lines[1], "commit: "+cmd.Commit) {
		t.Errorf("line 2 = %q, want commit %q", lines[1], cmd.Commit)
	}
	if !strings.Contains(lines[2], "built:  "+cmd.Date) {
		t.Errorf("line 3 = %q, want date %q", lines[2], cmd.Date)
	}
}
