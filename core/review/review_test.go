package review

import "testing"

func TestOpType_Requirements(t *testing.T) {
	tests := []struct {
		op           OpType
		valid        bool
		needOriginal bool
		needNew      bool
	}{
		{OpReplace, true, true, true},
		{OpInsert, true, false, true},
		{OpDelete, true, true, false},
		{OpType("move"), false, false, false},
		{OpType(""), false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			if got := tt.op.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
			if got := tt.op.NeedsOriginalText(); got != tt.needOriginal {
				t.Errorf("NeedsOriginalText() = %v, want %v", got, tt.needOriginal)
			}
			if got := tt.op.NeedsNewText(); got != tt.needNew {
				t.Errorf("NeedsNewText() = %v, want %v", got, tt.needNew)
			}
		})
	}
}

func TestSeverity_Valid(t *testing.T) {
	for _, s := range []Severity{SeverityError, SeverityWarning, SeveritySuggestion} {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []Severity{"info", "ERROR", ""} {
		if s.Valid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestParagraphReview_LenCountsCodePoints(t *testing.T) {
	p := ParagraphReview{OriginalText: "数据错误"}
	if got := p.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}
}

func sampleResult() *DocumentEditResult {
	return &DocumentEditResult{
		DocumentInfo: DocumentInfo{
			Title:       "Report",
			TotalIssues: IssueCounts{Errors: 9},
		},
		ReviewContent: []ParagraphReview{
			{
				ID:           "p1",
				OriginalText: "abc",
				Changes: []EditOperation{
					{Type: OpDelete, Severity: SeverityError, OriginalText: "a", Explanation: "x"},
					{Type: OpInsert, Severity: SeveritySuggestion, NewText: "d", Explanation: "y"},
				},
			},
			{ID: "p2", OriginalText: "def", Changes: []EditOperation{}},
		},
	}
}

func TestDocumentEditResult_CountBySeverity(t *testing.T) {
	got := sampleResult().CountBySeverity()
	want := IssueCounts{Errors: 1, Suggestions: 1}
	if got != want {
		t.Errorf("CountBySeverity() = %+v, want %+v", got, want)
	}
	if got.Total() != 2 {
		t.Errorf("Total() = %d, want 2", got.Total())
	}
}

func TestDocumentEditResult_CloneIsDeep(t *testing.T) {
	orig := sampleResult()
	clone := orig.Clone()

	clone.ReviewContent[0].Changes[0].Explanation = "changed"
	clone.ReviewContent[1].ID = "other"

	if orig.ReviewContent[0].Changes[0].Explanation != "x" {
		t.Error("mutating the clone's changes leaked into the original")
	}
	if orig.ReviewContent[1].ID != "p2" {
		t.Error("mutating the clone's paragraphs leaked into the original")
	}
	if clone.ReviewContent[1].Changes == nil {
		t.Error("empty change list should stay non-nil after Clone")
	}

	var nilResult *DocumentEditResult
	if nilResult.Clone() != nil {
		t.Error("Clone() of nil should be nil")
	}
}
