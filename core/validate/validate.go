package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/leofalp/editdecode/core/review"
	"github.com/leofalp/editdecode/internal/utils"
)

// Failure describes the first field that does not match the data model.
// Found holds the offending value, or nil when the field is missing.
type Failure struct {
	Path   string
	Found  any
	Reason string
}

func (f *Failure) Error() string {
	path := f.Path
	if path == "" {
		path = "(root)"
	}
	return fmt.Sprintf("validate: %s: %s (found %s)", path, f.Reason, Describe(f.Found))
}

const describeMaxLen = 40

// Describe renders a decoded JSON value for error messages. Long strings
// are cut to keep messages on one line.
func Describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "nothing"
	case string:
		return strconv.Quote(utils.TruncateString(x, describeMaxLen))
	case json.Number:
		return x.String()
	case bool, float64, int:
		return fmt.Sprint(x)
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Validate checks a value produced by encoding/json (ideally decoded with
// UseNumber) against the review data model and builds the typed result.
// Checks run in document order and stop at the first failure, returned as a
// *Failure. The input is never modified and no value is coerced: numbers must
// be integral, strings must be strings.
//
// Positions are range-checked against the paragraph length in code points
// but never compared with the paragraph text.
func Validate(v any) (*review.DocumentEditResult, error) {
	root, ok := v.(map[string]any)
	if !ok {
		return nil, &Failure{Found: v, Reason: "must be an object"}
	}

	info, err := documentInfo(root)
	if err != nil {
		return nil, err
	}

	paragraphs, err := reviewContent(root)
	if err != nil {
		return nil, err
	}

	return &review.DocumentEditResult{DocumentInfo: info, ReviewContent: paragraphs}, nil
}

func documentInfo(root map[string]any) (review.DocumentInfo, error) {
	var info review.DocumentInfo

	obj, err := object(root, "", "documentInfo")
	if err != nil {
		return info, err
	}
	if info.Title, err = str(obj, "documentInfo", "title"); err != nil {
		return info, err
	}
	if info.Overview, err = str(obj, "documentInfo", "overview"); err != nil {
		return info, err
	}

	totals, err := object(obj, "documentInfo", "totalIssues")
	if err != nil {
		return info, err
	}
	const totalsPath = "documentInfo.totalIssues"
	if info.TotalIssues.Errors, err = count(totals, totalsPath, "errors"); err != nil {
		return info, err
	}
	if info.TotalIssues.Warnings, err = count(totals, totalsPath, "warnings"); err != nil {
		return info, err
	}
	if info.TotalIssues.Suggestions, err = count(totals, totalsPath, "suggestions"); err != nil {
		return info, err
	}
	return info, nil
}

func reviewContent(root map[string]any) ([]review.ParagraphReview, error) {
	items, err := array(root, "", "reviewContent")
	if err != nil {
		return nil, err
	}

	paragraphs := make([]review.ParagraphReview, 0, len(items))
	seen := make(map[string]int, len(items))
	for i, item := range items {
		path := fmt.Sprintf("reviewContent[%d]", i)
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &Failure{Path: path, Found: item, Reason: "must be an object"}
		}

		var p review.ParagraphReview
		if p.ID, err = str(obj, path, "id"); err != nil {
			return nil, err
		}
		if first, dup := seen[p.ID]; dup {
			return nil, &Failure{
				Path:   join(path, "id"),
				Found:  p.ID,
				Reason: fmt.Sprintf("duplicates reviewContent[%d].id", first),
			}
		}
		seen[p.ID] = i

		if p.OriginalText, err = str(obj, path, "originalText"); err != nil {
			return nil, err
		}
		if p.Changes, err = changes(obj, path, p.Len()); err != nil {
			return nil, err
		}
		paragraphs = append(paragraphs, p)
	}
	return paragraphs, nil
}

func changes(paragraph map[string]any, parent string, textLen int) ([]review.EditOperation, error) {
	items, err := array(paragraph, parent, "changes")
	if err != nil {
		return nil, err
	}

	ops := make([]review.EditOperation, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("%s.changes[%d]", parent, i)
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &Failure{Path: path, Found: item, Reason: "must be an object"}
		}
		op, err := change(obj, path, textLen)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func change(obj map[string]any, path string, textLen int) (review.EditOperation, error) {
	var op review.EditOperation

	kind, err := str(obj, path, "type")
	if err != nil {
		return op, err
	}
	op.Type = review.OpType(kind)
	if !op.Type.Valid() {
		return op, &Failure{Path: join(path, "type"), Found: kind, Reason: "must be one of replace, insert, delete"}
	}

	if op.Position, err = position(obj, path, textLen); err != nil {
		return op, err
	}

	if op.Type.NeedsOriginalText() {
		if op.OriginalText, err = str(obj, path, "originalText"); err != nil {
			return op, err
		}
		if op.OriginalText == "" {
			return op, &Failure{
				Path:   join(path, "originalText"),
				Found:  op.OriginalText,
				Reason: fmt.Sprintf("must not be empty for %s", op.Type),
			}
		}
	} else if op.OriginalText, err = optionalStr(obj, path, "originalText"); err != nil {
		return op, err
	}

	if op.Type.NeedsNewText() {
		if op.NewText, err = str(obj, path, "newText"); err != nil {
			return op, err
		}
	} else if op.NewText, err = optionalStr(obj, path, "newText"); err != nil {
		return op, err
	}

	if op.Explanation, err = str(obj, path, "explanation"); err != nil {
		return op, err
	}
	if strings.TrimSpace(op.Explanation) == "" {
		return op, &Failure{Path: join(path, "explanation"), Found: op.Explanation, Reason: "must not be empty"}
	}

	severity, err := str(obj, path, "severity")
	if err != nil {
		return op, err
	}
	op.Severity = review.Severity(severity)
	if !op.Severity.Valid() {
		return op, &Failure{Path: join(path, "severity"), Found: severity, Reason: "must be one of error, warning, suggestion"}
	}

	if op.Category, err = optionalStr(obj, path, "category"); err != nil {
		return op, err
	}
	return op, nil
}

func position(obj map[string]any, parent string, textLen int) (review.Position, error) {
	var pos review.Position

	posObj, err := object(obj, parent, "position")
	if err != nil {
		return pos, err
	}
	path := join(parent, "position")

	if pos.Start, err = count(posObj, path, "start"); err != nil {
		return pos, err
	}
	if pos.End, err = count(posObj, path, "end"); err != nil {
		return pos, err
	}
	if pos.Start > pos.End {
		return pos, &Failure{Path: join(path, "start"), Found: posObj["start"], Reason: "must not exceed end"}
	}
	if pos.End > textLen {
		return pos, &Failure{
			Path:   join(path, "end"),
			Found:  posObj["end"],
			Reason: fmt.Sprintf("must not exceed the paragraph length %d", textLen),
		}
	}
	return pos, nil
}

func join(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func object(obj map[string]any, parent, key string) (map[string]any, error) {
	v := obj[key]
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &Failure{Path: join(parent, key), Found: v, Reason: "must be an object"}
	}
	return m, nil
}

func array(obj map[string]any, parent, key string) ([]any, error) {
	v := obj[key]
	a, ok := v.([]any)
	if !ok {
		return nil, &Failure{Path: join(parent, key), Found: v, Reason: "must be an array"}
	}
	return a, nil
}

func str(obj map[string]any, parent, key string) (string, error) {
	v := obj[key]
	s, ok := v.(string)
	if !ok {
		return "", &Failure{Path: join(parent, key), Found: v, Reason: "must be a string"}
	}
	return s, nil
}

// optionalStr accepts a missing or null member as the empty string.
func optionalStr(obj map[string]any, parent, key string) (string, error) {
	if obj[key] == nil {
		return "", nil
	}
	return str(obj, parent, key)
}

// count reads a non-negative integer.
func count(obj map[string]any, parent, key string) (int, error) {
	v := obj[key]
	n, ok := integer(v)
	switch {
	case !ok:
		return 0, &Failure{Path: join(parent, key), Found: v, Reason: "must be an integer"}
	case n < 0:
		return 0, &Failure{Path: join(parent, key), Found: v, Reason: "must not be negative"}
	}
	return n, nil
}

// integer accepts json.Number, float64 and int values that hold a whole
// number, so 3, 3.0 and 3e0 are all the integer 3.
func integer(v any) (int, bool) {
	switch x := v.(type) {
	case json.Number:
		if n, err := strconv.ParseInt(x.String(), 10, 0); err == nil {
			return int(n), true
		}
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return whole(f)
	case float64:
		return whole(x)
	case int:
		return x, true
	}
	return 0, false
}

// maxExact is the largest magnitude at which every float64 integer is exact.
const maxExact = 1 << 53

func whole(f float64) (int, bool) {
	if f != math.Trunc(f) || math.Abs(f) > maxExact {
		return 0, false
	}
	return int(f), true
}
