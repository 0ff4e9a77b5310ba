package sanitize

import "unicode/utf8"

// Byte-level helpers shared by the repair steps. Every structural JSON
// character is ASCII and UTF-8 continuation bytes are always >= 0x80, so the
// scanners can walk bytes and still copy multi-byte text untouched.

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// skipSpaces returns the index of the first non-space byte at or after i.
func skipSpaces(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// stringEnd returns the index just past the closing quote of the string
// literal opening at s[i], or len(s) when the literal is unterminated.
func stringEnd(s string, i int) int {
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '"':
			return j + 1
		}
	}
	return len(s)
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '_' || c == '-' || c == '$' || c >= utf8.RuneSelf
}

// identEnd returns the end of the bare identifier starting at i.
func identEnd(s string, i int) int {
	for i < len(s) && isIdentByte(s[i]) {
		i++
	}
	return i
}

// isStructural reports whether c terminates a value.
func isStructural(c byte) bool {
	switch c {
	case ',', ':', '{', '}', '[', ']', '"':
		return true
	}
	return false
}

// isJSONNumber reports whether v is a number in strict JSON grammar.
func isJSONNumber(v string) bool {
	i := 0
	if i < len(v) && v[i] == '-' {
		i++
	}
	if i >= len(v) {
		return false
	}
	switch {
	case v[i] == '0':
		i++
	case v[i] >= '1' && v[i] <= '9':
		for i < len(v) && v[i] >= '0' && v[i] <= '9' {
			i++
		}
	default:
		return false
	}
	if i < len(v) && v[i] == '.' {
		i++
		start := i
		for i < len(v) && v[i] >= '0' && v[i] <= '9' {
			i++
		}
		if i == start {
			return false
		}
	}
	if i < len(v) && (v[i] == 'e' || v[i] == 'E') {
		i++
		if i < len(v) && (v[i] == '+' || v[i] == '-') {
			i++
		}
		start := i
		for i < len(v) && v[i] >= '0' && v[i] <= '9' {
			i++
		}
		if i == start {
			return false
		}
	}
	return i == len(v)
}

func isLiteral(v string) bool {
	return v == "true" || v == "false" || v == "null"
}

// closesAt reports whether a quote ending just before index i is a real
// closing delimiter: the next significant character is a separator, a
// closing bracket, a colon, or the end of input. Full-width separators count
// because quote normalization runs before they are rewritten.
func closesAt(s string, i int) bool {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch r {
		case ' ', '\t', '\n', '\r', '\u3000', '\u00a0':
			i += size
			continue
		case ',', '}', ']', ':', '，', '｝', '］', '：':
			return true
		}
		return false
	}
	return true
}
