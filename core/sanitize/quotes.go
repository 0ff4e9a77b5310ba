package sanitize

import (
	"strings"
	"unicode/utf8"
)

// fullWidth maps full-width punctuation that models emit in place of JSON
// structural characters.
var fullWidth = map[rune]rune{
	'｛': '{',
	'｝': '}',
	'［': '[',
	'］': ']',
	'：': ':',
	'，': ',',
	'；': ',',
}

// quoteFamily describes a non-standard string delimiter: the runes that may
// close a literal it opened.
type quoteFamily struct {
	closers string
}

var (
	doubleFamily = &quoteFamily{closers: "\"“”„‟＂"}
	singleFamily = &quoteFamily{closers: "'‘’‚‛＇"}
	cornerFamily = &quoteFamily{closers: "」"}
	whiteFamily  = &quoteFamily{closers: "』"}
)

func openerFamily(r rune) *quoteFamily {
	switch r {
	case '“', '”', '„', '‟', '＂':
		return doubleFamily
	case '\'', '‘', '’', '‚', '‛', '＇':
		return singleFamily
	case '「':
		return cornerFamily
	case '『':
		return whiteFamily
	}
	return nil
}

// NormalizeQuotes rewrites curly, full-width, corner and single-quote string
// delimiters to standard double quotes and full-width structural punctuation
// to ASCII.
//
// Only quotes in a token-start position (after '{', '[', ',', ':' or another
// literal) open a literal, so apostrophes inside bare words survive. A
// candidate closing quote ends the literal only when followed by a separator,
// a closing bracket, a colon, the end of input, or whitespace and another
// quote. Any other occurrence is content, and standard double quotes found in
// such content are escaped. Literals that already use standard double quotes
// are copied untouched.
func NormalizeQuotes(s string) string {
	if !needsQuoteNormalization(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)

	var (
		lastSig  rune = '{'
		family   *quoteFamily
		standard bool
		escaped  bool
	)

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		next := i + size

		switch {
		case standard:
			b.WriteString(s[i:next])
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				standard = false
				lastSig = '"'
			}

		case family != nil:
			switch {
			case r == '\\' && next < len(s):
				nr, nsize := utf8.DecodeRuneInString(s[next:])
				switch {
				case strings.ContainsRune(family.closers, nr) && nr != '"':
					// JavaScript-style \' has no JSON equivalent.
					b.WriteRune(nr)
				case nr == '"':
					b.WriteString(`\"`)
				default:
					b.WriteByte('\\')
					b.WriteString(s[next : next+nsize])
				}
				next += nsize
			case strings.ContainsRune(family.closers, r) && closesFamily(s, next):
				b.WriteByte('"')
				family = nil
				lastSig = '"'
			case r == '"':
				b.WriteString(`\"`)
			default:
				b.WriteString(s[i:next])
			}

		default:
			if mapped, ok := fullWidth[r]; ok {
				r = mapped
				b.WriteRune(r)
				lastSig = r
				break
			}
			if r == '"' {
				standard = true
				b.WriteByte('"')
				break
			}
			// After a closed literal a quote can only start the next one.
			if f := openerFamily(r); f != nil && (isValueStart(lastSig) || lastSig == '"') {
				family = f
				b.WriteByte('"')
				break
			}
			b.WriteString(s[i:next])
			if !isSpaceRune(r) {
				lastSig = r
			}
		}
		i = next
	}
	return b.String()
}

// closesFamily extends closesAt with the missing-comma case: a quote
// separated by whitespace from the next quote closes its literal.
func closesFamily(s string, i int) bool {
	if closesAt(s, i) {
		return true
	}
	j := i
	for j < len(s) {
		r, size := utf8.DecodeRuneInString(s[j:])
		if !isSpaceRune(r) {
			break
		}
		j += size
	}
	if j == i || j >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[j:])
	return r == '"' || openerFamily(r) != nil
}

func isValueStart(r rune) bool {
	return r == '{' || r == '[' || r == ',' || r == ':'
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\u3000' || r == '\u00a0'
}

func needsQuoteNormalization(s string) bool {
	return strings.ContainsAny(s, "'“”„‟＂‘’‚‛＇「『｛｝［］：，；")
}

// EscapeInnerQuotes escapes '"' characters a model left unescaped inside a
// string literal, as in "use "7%" here". A quote inside a literal closes it
// only when closesAt agrees, when another string follows after whitespace,
// or when a bare key and its colon follow. Any other quote is
// written as \". Literals that do not open in a key or value position are
// copied untouched, as are unterminated literals.
func EscapeInnerQuotes(s string) string {
	if !strings.Contains(s, `"`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)

	var lastSig byte
	for i := 0; i < len(s); {
		c := s[i]
		if c != '"' {
			b.WriteByte(c)
			if !isSpace(c) {
				lastSig = c
			}
			i++
			continue
		}

		switch lastSig {
		case 0, '{', '[', ',', ':':
		default:
			j := stringEnd(s, i)
			b.WriteString(s[i:j])
			i = j
			lastSig = '"'
			continue
		}

		j, escaped := innerLiteralEnd(s, i)
		if j < 0 {
			b.WriteString(s[i:])
			break
		}
		if len(escaped) == 0 {
			b.WriteString(s[i:j])
		} else {
			last := i + 1
			for _, q := range escaped {
				b.WriteString(s[last:q])
				b.WriteString(`\"`)
				last = q + 1
			}
			b.WriteString(s[last:j])
		}
		i = j
		lastSig = '"'
	}
	return b.String()
}

// innerLiteralEnd scans the literal opening at s[i] and returns the index just
// past its real closing quote together with the positions of the quotes that
// need escaping. It returns -1 when the literal never closes.
func innerLiteralEnd(s string, i int) (int, []int) {
	var escaped []int
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '"':
			if closesAt(s, j+1) || opensMember(s, j+1) {
				return j + 1, escaped
			}
			escaped = append(escaped, j)
		}
	}
	return -1, nil
}

// opensMember reports whether the text at i starts another string after
// whitespace, or a bare key followed by a colon: the shapes left behind by a
// dropped comma. A quote directly followed by another quote, as in
// "the "end"", is not treated as a separator.
func opensMember(s string, i int) bool {
	k := skipSpaces(s, i)
	if k >= len(s) {
		return false
	}
	if s[k] == '"' {
		return k > i
	}
	end := identEnd(s, k)
	if end == k {
		return false
	}
	end = skipSpaces(s, end)
	return end < len(s) && s[end] == ':'
}
