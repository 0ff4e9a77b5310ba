package utils

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

const (
	// DefaultMaxStringLength is the default maximum length, in runes, of
	// truncated strings
	DefaultMaxStringLength = 500
)

// JSONToString serialises object to JSON. When the optional indent argument
// is true the output uses two-space indentation. On marshalling failure it
// returns a JSON-formatted error string instead, so the result is always
// printable.
func JSONToString(object interface{}, indent ...bool) string {
	var encoded []byte
	var err error
	if len(indent) > 0 && indent[0] {
		encoded, err = json.MarshalIndent(object, "", "  ")
	} else {
		encoded, err = json.Marshal(object)
	}
	if err != nil {
		return "{\"error\": \"failed to marshal to JSON: " + err.Error() + "\"}"
	}
	return string(encoded)
}

// TruncateString shortens s to at most maxLen runes, appending a suffix that
// records the original length in runes so readers know text was omitted.
// The cut never splits a multi-byte character. If maxLen is zero or negative,
// [DefaultMaxStringLength] is used instead.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	if len(s) <= maxLen {
		return s
	}
	total := utf8.RuneCountInString(s)
	if total <= maxLen {
		return s
	}

	cut, n := 0, 0
	for cut < len(s) && n < maxLen {
		_, size := utf8.DecodeRuneInString(s[cut:])
		cut += size
		n++
	}
	return fmt.Sprintf("%s... (truncated, total: %d chars)", s[:cut], total)
}

// TruncateStringDefault truncates a string using DefaultMaxStringLength
func TruncateStringDefault(s string) string {
	return TruncateString(s, DefaultMaxStringLength)
}
