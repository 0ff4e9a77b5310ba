package sanitize

import (
	"encoding/json"
	"strings"
)

// Unescape undoes double encoding. A payload whose keys are written as \"key\"
// was serialised twice and is decoded one level as a whole. Otherwise, inside
// string literals an even run of backslashes before a quote that is not a
// real closing delimiter (\\" in the middle of text) loses one backslash so
// the quote becomes an escaped quote again.
func Unescape(s string) string {
	if isDoubleEncoded(s) {
		return decodeOneLevel(s)
	}
	if !strings.Contains(s, `\\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	inString := false
	for i := 0; i < len(s); {
		c := s[i]
		if !inString {
			b.WriteByte(c)
			inString = c == '"'
			i++
			continue
		}

		switch c {
		case '"':
			b.WriteByte(c)
			inString = false
			i++
		case '\\':
			j := i
			for j < len(s) && s[j] == '\\' {
				j++
			}
			run := j - i
			switch {
			case j >= len(s):
				b.WriteString(s[i:j])
			case run%2 == 1:
				// Last backslash escapes the next byte.
				b.WriteString(s[i:j])
				b.WriteByte(s[j])
				j++
			case s[j] == '"' && !closesAt(s, j+1):
				b.WriteString(s[i : j-1])
				b.WriteByte('"')
				j++
			default:
				b.WriteString(s[i:j])
			}
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// isDoubleEncoded reports whether the first member of the object starts with
// an escaped quote, which is never valid at that position.
func isDoubleEncoded(s string) bool {
	if len(s) == 0 || s[0] != '{' {
		return false
	}
	i := skipSpaces(s, 1)
	return strings.HasPrefix(s[i:], `\"`)
}

func decodeOneLevel(s string) string {
	var decoded string
	if err := json.Unmarshal([]byte(`"`+s+`"`), &decoded); err == nil {
		return decoded
	}
	return strings.NewReplacer(`\\`, `\`, `\"`, `"`).Replace(s)
}
