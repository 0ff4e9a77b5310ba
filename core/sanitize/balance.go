package sanitize

// BalanceBrackets makes bracket nesting well formed. A closer that does not
// match the innermost opener closes the intervening containers first when its
// own opener is still pending, and is dropped otherwise. At the end an open
// string is terminated, a dangling key or colon gets a null value, and the
// pending containers are closed innermost first.
//
// The result is only syntactically plausible; it can nest values in the
// wrong container and validation decides whether it is usable.
func BalanceBrackets(s string) string {
	out := make([]byte, 0, len(s)+16)
	stack := make([]byte, 0, 16)
	pending := map[byte]int{'{': 0, '[': 0}

	var (
		inString, escaped bool
		keyString         bool
		lastSig           byte
	)

	pop := func() {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pending[top]--
		out = append(out, closerOf(top))
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
				lastSig = '"'
			}
			continue
		}

		switch c {
		case '"':
			inString = true
			keyString = len(stack) > 0 && stack[len(stack)-1] == '{' && (lastSig == '{' || lastSig == ',')
			out = append(out, c)
		case '{', '[':
			stack = append(stack, c)
			pending[c]++
			out = append(out, c)
			lastSig = c
		case '}', ']':
			open := openerOf(c)
			if pending[open] == 0 {
				continue
			}
			for stack[len(stack)-1] != open {
				pop()
			}
			pop()
			lastSig = c
		default:
			out = append(out, c)
			if !isSpace(c) {
				lastSig = c
			}
		}
	}

	if inString {
		if escaped {
			out = out[:len(out)-1]
		}
		out = append(out, '"')
		lastSig = '"'
	}

	if len(stack) > 0 {
		out = trimTrailingSpace(out)
		switch {
		case lastSig == ':':
			out = append(out, "null"...)
		case lastSig == ',':
			out = out[:len(out)-1]
		case lastSig == '"' && keyString && stack[len(stack)-1] == '{':
			out = append(out, ":null"...)
		}
		for len(stack) > 0 {
			pop()
		}
	}
	return string(out)
}

func openerOf(c byte) byte {
	if c == '}' {
		return '{'
	}
	return '['
}

func closerOf(c byte) byte {
	if c == '{' {
		return '}'
	}
	return ']'
}

func trimTrailingSpace(b []byte) []byte {
	for len(b) > 0 && isSpace(b[len(b)-1]) {
		b = b[:len(b)-1]
	}
	return b
}
