package sanitize

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNoJSONObject is returned when the input holds no '{' ... '}' pair.
var ErrNoJSONObject = errors.New("sanitize: no JSON object found")

// ExtractObject keeps the text from the first '{' to the last '}', dropping
// Markdown fences and any prose the model wrapped around the object. The
// full-width braces '｛' and '｝' count as boundaries too; NormalizeQuotes
// rewrites them later.
func ExtractObject(s string) (string, error) {
	start := strings.IndexAny(s, "{｛")
	end := strings.LastIndexAny(s, "}｝")
	if start < 0 || end < start {
		return "", ErrNoJSONObject
	}
	_, size := utf8.DecodeRuneInString(s[end:])
	return s[start : end+size], nil
}

// StripControl removes C0 control characters and DEL. Outside string literals tab,
// newline and carriage return become a space so adjacent tokens stay apart.
// Inside literals they are re-encoded as escape sequences and every other
// control character is dropped.
func StripControl(s string) string {
	if !hasControl(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isControl(c) {
			if !inString {
				if c == '\t' || c == '\n' || c == '\r' {
					b.WriteByte(' ')
				}
				continue
			}
			if esc := controlEscape(c); esc != 0 {
				// A backslash directly before a raw newline already opened
				// the escape; only the letter is missing.
				if !escaped {
					b.WriteByte('\\')
				}
				b.WriteByte(esc)
				escaped = false
			} else if escaped {
				b.WriteByte('\\')
				escaped = false
			}
			continue
		}

		b.WriteByte(c)
		switch {
		case !inString:
			inString = c == '"'
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inString = false
		}
	}
	return b.String()
}

func hasControl(s string) bool {
	for i := 0; i < len(s); i++ {
		if isControl(s[i]) {
			return true
		}
	}
	return false
}

func isControl(c byte) bool {
	return c < 0x20 || c == 0x7f
}

func controlEscape(c byte) byte {
	switch c {
	case '\n':
		return 'n'
	case '\r':
		return 'r'
	case '\t':
		return 't'
	}
	return 0
}

// CollapseWhitespace folds every run of whitespace outside string literals,
// blank lines included, into a single space. Literal contents are kept as is.
func CollapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString, escaped, pending := false, false, false
	for _, r := range s {
		if inString {
			b.WriteRune(r)
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		if unicode.IsSpace(r) {
			pending = true
			continue
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteRune(r)
		inString = r == '"'
	}
	if pending {
		b.WriteByte(' ')
	}
	return b.String()
}
