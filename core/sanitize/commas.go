package sanitize

import "strings"

// InsertMissingCommas adds the separator between two adjacent values when the
// model dropped it: a string, number, literal, '}' or ']' directly followed by
// the start of another value or key.
func InsertMissingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 16)

	afterValue := false
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isSpace(c):
			b.WriteByte(c)
			i++
		case c == '"':
			if afterValue {
				b.WriteByte(',')
			}
			j := stringEnd(s, i)
			b.WriteString(s[i:j])
			i = j
			afterValue = true
		case c == '{' || c == '[':
			if afterValue {
				b.WriteByte(',')
			}
			b.WriteByte(c)
			i++
			afterValue = false
		case c == '}' || c == ']':
			b.WriteByte(c)
			i++
			afterValue = true
		case c == ',' || c == ':':
			b.WriteByte(c)
			i++
			afterValue = false
		default:
			if afterValue {
				b.WriteByte(',')
			}
			j := i
			for j < len(s) && !isSpace(s[j]) && !isStructural(s[j]) {
				j++
			}
			b.WriteString(s[i:j])
			i = j
			afterValue = true
		}
	}
	return b.String()
}

// RemoveTrailingCommas drops commas that precede '}' or ']' (or the end of
// input), commas directly after '{' or '[', and empty slots such as ",,".
func RemoveTrailingCommas(s string) string {
	if !strings.Contains(s, ",") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	var lastSig byte
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '"':
			j := stringEnd(s, i)
			b.WriteString(s[i:j])
			i = j
			lastSig = '"'
			continue
		case c == ',':
			k := skipSpaces(s, i+1)
			dangling := k >= len(s) || s[k] == '}' || s[k] == ']' || s[k] == ','
			if dangling || lastSig == '{' || lastSig == '[' {
				i++
				continue
			}
		}
		b.WriteByte(c)
		if !isSpace(c) {
			lastSig = c
		}
		i++
	}
	return b.String()
}
