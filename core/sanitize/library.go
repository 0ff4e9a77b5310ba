package sanitize

import (
	"encoding/json"

	"github.com/kaptinlin/jsonrepair"
)

// maxRepairDepth bounds the nesting depth handed to jsonrepair, whose parser
// recurses once per level.
const maxRepairDepth = 256

// LibraryRepair is the last resort of the aggressive pass: text that is still
// not valid JSON is handed to jsonrepair, which mostly covers truncated
// literals and stray tokens the earlier steps leave behind. The repaired text
// is used only if it is valid JSON; otherwise the input is returned unchanged.
func LibraryRepair(s string) (out string) {
	if json.Valid([]byte(s)) || nestingDepth(s) > maxRepairDepth {
		return s
	}

	defer func() {
		if recover() != nil {
			out = s
		}
	}()

	repaired, err := jsonrepair.JSONRepair(s)
	if err != nil || !json.Valid([]byte(repaired)) {
		return s
	}
	return repaired
}

// nestingDepth returns the maximum bracket depth outside string literals.
func nestingDepth(s string) int {
	depth, maxDepth := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			i = stringEnd(s, i) - 1
		case '{', '[':
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
		case '}', ']':
			depth--
		}
	}
	return maxDepth
}
