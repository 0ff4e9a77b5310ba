package sanitize

import "strings"

// QuoteKeys wraps bare property names in double quotes. A name is a run of
// letters, digits, '_', '-', '$' or non-ASCII characters that follows '{' or
// ',' and is itself followed by ':'. A name that lost only its opening quote
// (`, type":`) is repaired as well.
func QuoteKeys(s string) string {
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
		if c != '{' && c != ',' {
			continue
		}

		for i < len(s) && isSpace(s[i]) {
			b.WriteByte(s[i])
			i++
		}

		end := identEnd(s, i)
		if end == i {
			continue
		}
		k := end
		stray := k < len(s) && s[k] == '"'
		if stray {
			k++
		}
		if k = skipSpaces(s, k); k >= len(s) || s[k] != ':' {
			continue
		}

		b.WriteByte('"')
		b.WriteString(s[i:end])
		b.WriteByte('"')
		i = end
		if stray {
			i++
		}
	}
	return b.String()
}
