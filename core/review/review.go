package review

import "unicode/utf8"

// OpType is the kind of a single suggested edit.
type OpType string

const (
	OpReplace OpType = "replace"
	OpInsert  OpType = "insert"
	OpDelete  OpType = "delete"
)

// Valid reports whether t is one of the closed set of edit kinds.
func (t OpType) Valid() bool {
	switch t {
	case OpReplace, OpInsert, OpDelete:
		return true
	default:
		return false
	}
}

// NeedsOriginalText reports whether an edit of this kind must reference
// existing text.
func (t OpType) NeedsOriginalText() bool {
	return t == OpReplace || t == OpDelete
}

// NeedsNewText reports whether an edit of this kind must carry replacement text.
func (t OpType) NeedsNewText() bool {
	return t == OpReplace || t == OpInsert
}

// Severity grades how important an edit is.
type Severity string

const (
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// Valid reports whether s is one of the closed set of severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeveritySuggestion:
		return true
	default:
		return false
	}
}

// DocumentEditResult is the decoded review of a whole document. It is built
// once per successful decode and must be treated as read-only afterwards.
type DocumentEditResult struct {
	DocumentInfo  DocumentInfo      `json:"documentInfo" jsonschema:"description=Summary of the reviewed document"`
	ReviewContent []ParagraphReview `json:"reviewContent" jsonschema:"description=One entry per source paragraph in document order"`
}

// DocumentInfo summarises the review.
type DocumentInfo struct {
	Title       string      `json:"title" jsonschema:"description=Document title"`
	Overview    string      `json:"overview" jsonschema:"description=Human readable summary of the review"`
	TotalIssues IssueCounts `json:"totalIssues"`
}

// IssueCounts tallies the edits by severity as reported by the model.
type IssueCounts struct {
	Errors      int `json:"errors" jsonschema:"description=Number of error level issues"`
	Warnings    int `json:"warnings" jsonschema:"description=Number of warning level issues"`
	Suggestions int `json:"suggestions" jsonschema:"description=Number of suggestions"`
}

// Total returns the sum of all counters.
func (c IssueCounts) Total() int {
	return c.Errors + c.Warnings + c.Suggestions
}

// ParagraphReview holds the edits proposed for one source paragraph.
type ParagraphReview struct {
	ID           string          `json:"id" jsonschema:"description=Paragraph identifier unique within the result"`
	OriginalText string          `json:"originalText" jsonschema:"description=Paragraph text as sent to the model"`
	Changes      []EditOperation `json:"changes"`
}

// Len returns the length of the paragraph text in code points, the unit
// edit positions are expressed in.
func (p ParagraphReview) Len() int {
	return utf8.RuneCountInString(p.OriginalText)
}

// EditOperation is one atomic suggested change inside a paragraph.
type EditOperation struct {
	Type         OpType   `json:"type" jsonschema:"enum=replace,enum=insert,enum=delete"`
	Position     Position `json:"position"`
	OriginalText string   `json:"originalText,omitempty" jsonschema:"description=Text being replaced or deleted"`
	NewText      string   `json:"newText,omitempty" jsonschema:"description=Text being inserted or substituted"`
	Explanation  string   `json:"explanation" jsonschema:"description=Why the change is proposed"`
	Severity     Severity `json:"severity" jsonschema:"enum=error,enum=warning,enum=suggestion"`
	Category     string   `json:"category,omitempty" jsonschema:"description=Short issue class such as data or logic or format"`
}

// Position is a half-open code point range [Start, End) inside the
// paragraph's original text. Positions come from the model and are only
// range-checked, never matched against the text.
type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// CountBySeverity tallies the edits actually present in the result. The
// model's own TotalIssues is frequently out of sync with its edit list.
func (r *DocumentEditResult) CountBySeverity() IssueCounts {
	var counts IssueCounts
	for _, p := range r.ReviewContent {
		for _, c := range p.Changes {
			switch c.Severity {
			case SeverityError:
				counts.Errors++
			case SeverityWarning:
				counts.Warnings++
			case SeveritySuggestion:
				counts.Suggestions++
			}
		}
	}
	return counts
}

// Clone returns a deep copy of r.
func (r *DocumentEditResult) Clone() *DocumentEditResult {
	if r == nil {
		return nil
	}
	out := &DocumentEditResult{DocumentInfo: r.DocumentInfo}
	if r.ReviewContent != nil {
		out.ReviewContent = make([]ParagraphReview, len(r.ReviewContent))
		for i, p := range r.ReviewContent {
			cp := p
			if p.Changes != nil {
				cp.Changes = append(make([]EditOperation, 0, len(p.Changes)), p.Changes...)
			}
			out.ReviewContent[i] = cp
		}
	}
	return out
}
