package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/thoreinstein/vmsg/internal/errors"
)

func TestRunLookup(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		reason  string
		want    string
		wantErr bool
	}{
		{"override", "email", "required", "override: Please enter your email address\n", false},
		{"default", "name", "required", "default: {{ field }} is required\n", false},
		{"missing", "name", "pattern", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetState(t)
			catalogFlag = []string{writeFile(t, t.TempDir(), "messages.yaml", testCatalog)}

			var out bytes.Buffer
			err := runLookup(t.Context(), &out, tt.key, tt.reason)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrNoOverride) {
					t.Errorf("err = %v, want ErrNoOverride", err)
				}
			} else if err != nil {
				t.Fatalf("runLookup() error = %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestRunLookup_JSON(t *testing.T) {
	resetState(t)
	catalogFlag = []string{writeFile(t, t.TempDir(), "messages.yaml", testCatalog)}
	lookupJSON = true

	var out bytes.Buffer
	if err := runLookup(t.Context(), &out, "email", "required"); err != nil {
		t.Fatalf("runLookup() error = %v", err)
	}

	var got lookupResult
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	want := lookupResult{
		Key:      "email",
		Reason:   "required",
		Found:    true,
		Source:   "override",
		Template: "Please enter your email address",
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
