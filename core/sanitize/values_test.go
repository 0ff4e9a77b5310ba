package sanitize

import "testing"

func TestQuoteBareValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare word",
			input: `{"severity": error, "n": 1}`,
			want:  `{"severity": "error", "n": 1}`,
		},
		{
			name:  "python literals",
			input: `{"a": True, "b": None, "c": False}`,
			want:  `{"a": true, "b": null, "c": false}`,
		},
		{
			name:  "undefined",
			input: `{"a": undefined}`,
			want:  `{"a": null}`,
		},
		{
			name:  "value containing commas",
			input: `{"explanation": Fix this, then that, "severity": "error"}`,
			want:  `{"explanation": "Fix this, then that", "severity": "error"}`,
		},
		{
			name:  "value containing quotes",
			input: `{"a": say "hi" now}`,
			want:  `{"a": "say \"hi\" now"}`,
		},
		{
			name:  "value followed by a key without comma",
			input: `{"a": error "b": 1}`,
			want:  `{"a": "error" "b": 1}`,
		},
		{
			name:  "trailing space kept outside the literal",
			input: `{"a": fix }`,
			want:  `{"a": "fix" }`,
		},
		{
			name:  "stray backslash escaped",
			input: `{"a": C:\dir}`,
			want:  `{"a": "C:\\dir"}`,
		},
		{
			name:  "numbers literals and containers untouched",
			input: `{"a": {"b": [1, 2.5e3]}, "c": -0.5, "d": true, "e": "s"}`,
			want:  `{"a": {"b": [1, 2.5e3]}, "c": -0.5, "d": true, "e": "s"}`,
		},
		{
			name:  "malformed number quoted",
			input: `{"a": 01}`,
			want:  `{"a": "01"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuoteBareValues(tt.input); got != tt.want {
				t.Errorf("QuoteBareValues() = %q, want %q", got, tt.want)
			}
		})
	}
}
