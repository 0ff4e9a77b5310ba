package normalize

import (
	"strings"

	"github.com/leofalp/editdecode/core/review"
)

// DefaultCategory is assigned to edits whose category is missing or blank.
const DefaultCategory = "other"

// Level is the display level of an edit. It matches Severity except that
// suggestions are shown as informational.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// LevelOf maps a severity to its display level. Unknown severities map to
// LevelInfo.
func LevelOf(s review.Severity) Level {
	switch s {
	case review.SeverityError:
		return LevelError
	case review.SeverityWarning:
		return LevelWarning
	default:
		return LevelInfo
	}
}

// Normalize returns a deep copy of r with explanations and categories
// trimmed and blank categories set to DefaultCategory. r is not modified.
// A nil result yields nil.
func Normalize(r *review.DocumentEditResult) *review.DocumentEditResult {
	out := r.Clone()
	if out == nil {
		return nil
	}
	for i := range out.ReviewContent {
		changes := out.ReviewContent[i].Changes
		for j := range changes {
			changes[j].Explanation = strings.TrimSpace(changes[j].Explanation)
			changes[j].Category = strings.TrimSpace(changes[j].Category)
			if changes[j].Category == "" {
				changes[j].Category = DefaultCategory
			}
		}
	}
	return out
}

// Categories returns the distinct categories of r in first-seen order,
// with blank categories reported as DefaultCategory.
func Categories(r *review.DocumentEditResult) []string {
	if r == nil {
		return nil
	}
	var out []string
	seen := map[string]bool{}
	for _, p := range r.ReviewContent {
		for _, c := range p.Changes {
			category := strings.TrimSpace(c.Category)
			if category == "" {
				category = DefaultCategory
			}
			if !seen[category] {
				seen[category] = true
				out = append(out, category)
			}
		}
	}
	return out
}
