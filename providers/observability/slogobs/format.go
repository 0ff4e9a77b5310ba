package slogobs

import (
	"os"
	"strings"
)

// Environment variables consulted by GetFormatFromEnv, in priority order.
const (
	EnvLogFormat         = "EDITDECODE_LOG_FORMAT"
	EnvLogFormatFallback = "LOG_FORMAT"
)

// Format represents the output format for logs.
type Format string

const (
	// FormatCompact is a single-line format with JSON attributes (default).
	// Example: 2026-10-17 10:40:35 DEBUG Decode attempt failed → {"decode.attempt":1}
	FormatCompact Format = "compact"

	// FormatPretty is a multi-line format with one attribute per line.
	// Example:
	// 2026-10-17 10:40:35 🔵 DEBUG  Decode attempt failed
	//                    └─ decode.attempt: 1
	FormatPretty Format = "pretty"

	// FormatJSON is one JSON object per line, for log aggregation.
	// Example: {"time":"2026-10-17T10:40:35","level":"INFO","msg":"Decode completed","decode.attempt":1}
	FormatJSON Format = "json"
)

// LookupFormat parses s and reports whether it named a known format.
func LookupFormat(s string) (Format, bool) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "compact":
		return FormatCompact, true
	case "pretty":
		return FormatPretty, true
	case "json":
		return FormatJSON, true
	default:
		return FormatCompact, false
	}
}

// ParseFormat parses a format string. Unknown values yield FormatCompact.
func ParseFormat(s string) Format {
	f, _ := LookupFormat(s)
	return f
}

// GetFormatFromEnv reads EDITDECODE_LOG_FORMAT, then LOG_FORMAT.
// If neither is set, it returns FormatCompact.
func GetFormatFromEnv() Format {
	for _, key := range []string{EnvLogFormat, EnvLogFormatFallback} {
		if format := os.Getenv(key); format != "" {
			return ParseFormat(format)
		}
	}
	return FormatCompact
}

// String returns the string representation of the Format.
func (f Format) String() string {
	return string(f)
}
