package message

import (
	"slices"
	"testing"
)

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   map[string]string
		want     string
	}{
		{
			name:     "all placeholders known",
			template: "Value {{ foo }} is too {{ bar }}",
			params:   map[string]string{"foo": "5", "bar": "short"},
			want:     "Value 5 is too short",
		},
		{
			name:     "unknown placeholder left verbatim",
			template: "{{ baz }}",
			params:   map[string]string{"foo": "5"},
			want:     "{{ baz }}",
		},
		{
			name:     "mixed known and unknown",
			template: "{{ foo }} and {{  baz}}",
			params:   map[string]string{"foo": "5"},
			want:     "5 and {{  baz}}",
		},
		{
			name:     "no whitespace inside braces",
			template: "{{foo}}!",
			params:   map[string]string{"foo": "x"},
			want:     "x!",
		},
		{
			name:     "tabs and newlines inside braces",
			template: "{{\tfoo\n}}",
			params:   map[string]string{"foo": "x"},
			want:     "x",
		},
		{
			name:     "repeated placeholder",
			template: "{{ a }}{{ a }}",
			params:   map[string]string{"a": "ab"},
			want:     "abab",
		},
		{
			name:     "replacement is not rescanned",
			template: "{{ a }}",
			params:   map[string]string{"a": "{{ b }}", "b": "nope"},
			want:     "{{ b }}",
		},
		{
			name:     "case sensitive names",
			template: "{{ Foo }}",
			params:   map[string]string{"foo": "x"},
			want:     "{{ Foo }}",
		},
		{
			name:     "unmatched opening braces kept",
			template: "broken {{ foo and {{ foo }}",
			params:   map[string]string{"foo": "x"},
			want:     "broken {{ foo and x",
		},
		{
			name:     "empty name is not a placeholder",
			template: "{{ }}",
			params:   map[string]string{"": "x"},
			want:     "{{ }}",
		},
		{
			name:     "empty replacement value",
			template: "a{{ x }}b",
			params:   map[string]string{"x": ""},
			want:     "ab",
		},
		{
			name:     "nil params",
			template: "{{ x }}",
			params:   nil,
			want:     "{{ x }}",
		},
		{
			name:     "no placeholders",
			template: "plain text",
			params:   map[string]string{"x": "y"},
			want:     "plain text",
		},
		{
			name:     "dotted names",
			template: "{{ rule.min }}",
			params:   map[string]string{"rule.min": "3"},
			want:     "3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interpolate(tt.template, tt.params); got != tt.want {
				t.Errorf("Interpolate(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		template string
		want     []string
	}{
		{"", nil},
		{"no markers", nil},
		{"{{ a }} {{b}} {{ a }}", []string{"a", "b"}},
		{"{{ broken", nil},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			got := Placeholders(tt.template)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Placeholders(%q) = %v, want %v", tt.template, got, tt.want)
			}
		})
	}
}

func TestMalformed(t *testing.T) {
	tests := []struct {
		template string
		want     bool
	}{
		{"plain", false},
		{"{{ ok }} and {{fine}}", false},
		{"{{ open", true},
		{"close }}", true},
		{"{{ }}", true},
		{"{{ a b }}", true},
	}
	for _, tt := range tests {
		if got := Malformed(tt.template); got != tt.want {
			t.Errorf("Malformed(%q) = %v, want %v", tt.template, got, tt.want)
		}
	}
}
