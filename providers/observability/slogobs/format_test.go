package slogobs

import (
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
	}{
		{"compact lowercase", "compact", FormatCompact},
		{"compact uppercase", "COMPACT", FormatCompact},
		{"pretty lowercase", "pretty", FormatPretty},
		{"pretty padded", "  pretty ", FormatPretty},
		{"json lowercase", "json", FormatJSON},
		{"json uppercase", "JSON", FormatJSON},
		{"unknown defaults to compact", "unknown", FormatCompact},
		{"empty defaults to compact", "", FormatCompact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseFormat(tt.input)
			if result != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLookupFormat_ReportsUnknown(t *testing.T) {
	if _, ok := LookupFormat("yaml"); ok {
		t.Error("Expected yaml to be rejected")
	}
	if f, ok := LookupFormat("Json"); !ok || f != FormatJSON {
		t.Errorf("LookupFormat(Json) = %v, %v", f, ok)
	}
}

func TestGetFormatFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		primary  string
		fallback string
		expected Format
	}{
		{"primary takes precedence", "pretty", "json", FormatPretty},
		{"fallback used when primary unset", "", "json", FormatJSON},
		{"default when neither set", "", "", FormatCompact},
		{"primary only", "json", "", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvLogFormat, tt.primary)
			t.Setenv(EnvLogFormatFallback, tt.fallback)

			if got := GetFormatFromEnv(); got != tt.expected {
				t.Errorf("GetFormatFromEnv() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	for _, f := range []Format{FormatCompact, FormatPretty, FormatJSON} {
		if f.String() != string(f) {
			t.Errorf("Format.String() = %q, want %q", f.String(), string(f))
		}
	}
}
