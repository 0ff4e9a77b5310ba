package sanitize

import "strings"

// pythonLiterals maps constants models borrow from other languages.
var pythonLiterals = map[string]string{
	"True":      "true",
	"False":     "false",
	"None":      "null",
	"undefined": "null",
}

// QuoteBareValues wraps unquoted scalar values in double quotes. A bare value
// runs from just after a ':' up to the next closing bracket, or the next comma
// that is followed by another member; true, false, null and JSON numbers are
// left alone and objects, arrays and strings are skipped.
func QuoteBareValues(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 16)

	for i := 0; i < len(s); {
		c := s[i]
		if c == '"' {
			j := stringEnd(s, i)
			b.WriteString(s[i:j])
			i = j
			continue
		}

		b.WriteByte(c)
		i++
		if c != ':' {
			continue
		}

		for i < len(s) && isSpace(s[i]) {
			b.WriteByte(s[i])
			i++
		}
		if i >= len(s) {
			break
		}
		switch s[i] {
		case '"', '{', '[', ',', '}', ']':
			continue
		}

		j := bareValueEnd(s, i)
		raw := s[i:j]
		val := strings.TrimRight(raw, " \t\r\n")
		switch {
		case isLiteral(val) || isJSONNumber(val):
			b.WriteString(val)
		case pythonLiterals[val] != "":
			b.WriteString(pythonLiterals[val])
		default:
			writeQuoted(&b, val)
		}
		b.WriteString(raw[len(val):])
		i = j
	}
	return b.String()
}

// bareValueEnd returns the index of the byte that terminates the bare value
// starting at i.
func bareValueEnd(s string, i int) int {
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '}', ']':
			return j
		case ',':
			if startsMember(s, j+1) {
				return j
			}
		case '"':
			if j > i && isSpace(s[j-1]) && isKeyAt(s, j) {
				return j
			}
		}
	}
	return len(s)
}

// startsMember reports whether the text at i, after spaces, looks like the
// next object member or the end of the container.
func startsMember(s string, i int) bool {
	i = skipSpaces(s, i)
	if i >= len(s) {
		return true
	}
	switch s[i] {
	case '"', '}', ']', '{', '[':
		return true
	}
	end := identEnd(s, i)
	if end == i {
		return false
	}
	end = skipSpaces(s, end)
	return end < len(s) && s[end] == ':'
}

// isKeyAt reports whether the string literal opening at i is followed by ':'.
func isKeyAt(s string, i int) bool {
	end := stringEnd(s, i)
	end = skipSpaces(s, end)
	return end < len(s) && s[end] == ':'
}

// writeQuoted emits v as a JSON string literal. Existing valid escapes are
// kept, stray backslashes and quotes are escaped.
func writeQuoted(b *strings.Builder, v string) {
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			if i+1 < len(v) && strings.IndexByte(`"\/bfnrtu`, v[i+1]) >= 0 {
				b.WriteByte('\\')
				b.WriteByte(v[i+1])
				i++
			} else {
				b.WriteString(`\\`)
			}
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}
