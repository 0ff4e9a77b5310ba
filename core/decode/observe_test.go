package decode

import (
	"context"
	"testing"

	"github.com/leofalp/editdecode/providers/observability"
)

func TestDecode_ReportsFirstAttemptSuccess(t *testing.T) {
	recorder := observability.NewRecorder()
	d := New(WithObserver(recorder))

	if _, err := d.Decode(context.Background(), cleanDocument); err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}

	if got := len(recorder.Find("span.start", observability.SpanDecode)); got != 1 {
		t.Errorf("Expected 1 decode span, got %d", got)
	}
	ends := recorder.Find("span.end", observability.SpanDecode)
	if len(ends) != 1 {
		t.Fatalf("Expected span to end once, got %d", len(ends))
	}
	if v, _ := ends[0].Attr(observability.AttrDecodeOutcome); v != observability.OutcomeOK {
		t.Errorf("Expected outcome ok, got %v", v)
	}
	if v, _ := ends[0].Attr(observability.AttrDecodeRecovered); v != false {
		t.Errorf("Expected recovered=false, got %v", v)
	}
	if v, _ := ends[0].Attr(observability.AttrDecodeChanges); v != 1 {
		t.Errorf("Expected 1 change, got %v", v)
	}

	if got := len(recorder.Find("span.event", observability.EventAttemptStart)); got != 1 {
		t.Errorf("Expected 1 attempt, got %d", got)
	}
	if got := len(recorder.Find("counter", observability.MetricDecodeRecovered)); got != 0 {
		t.Errorf("Expected no recovered counter, got %d", got)
	}

	counts := recorder.Find("counter", observability.MetricDecodeCount)
	if len(counts) != 1 || counts[0].Value != 1 {
		t.Fatalf("Expected one decode count, got %+v", counts)
	}
	if got := len(recorder.Find("histogram", observability.MetricDecodeDuration)); got != 1 {
		t.Errorf("Expected one duration observation, got %d", got)
	}
	if got := len(recorder.Find("log", "Decode completed")); got != 1 {
		t.Errorf("Expected completion log, got %d", got)
	}
}

func TestDecode_ReportsRecovery(t *testing.T) {
	recorder := observability.NewRecorder()
	d := New(WithObserver(recorder))

	input := `{documentInfo: {title: "T", overview: "O", totalIssues: {errors: 0, warnings: 0, suggestions: 0}}, reviewContent: []}`
	if _, err := d.Decode(context.Background(), input); err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}

	if got := len(recorder.Find("span.event", observability.EventAttemptStart)); got != 2 {
		t.Errorf("Expected 2 attempts, got %d", got)
	}
	failed := recorder.Find("span.event", observability.EventAttemptFailed)
	if len(failed) != 1 {
		t.Fatalf("Expected 1 failed attempt, got %d", len(failed))
	}
	if v, _ := failed[0].Attr(observability.AttrErrorType); v != observability.OutcomeUnparseable {
		t.Errorf("Expected first attempt to be unparseable, got %v", v)
	}
	if got := len(recorder.Find("counter", observability.MetricDecodeRecovered)); got != 1 {
		t.Errorf("Expected recovered counter, got %d", got)
	}

	var steps []string
	for _, e := range recorder.Find("span.event", observability.EventSanitizeStep) {
		step, _ := e.Attr(observability.AttrSanitizeStep)
		steps = append(steps, step.(string))
	}
	if len(steps) == 0 || steps[0] != "quote_keys" {
		t.Errorf("Expected sanitize steps starting with quote_keys, got %v", steps)
	}
}

func TestDecode_ReportsFailure(t *testing.T) {
	recorder := observability.NewRecorder()
	d := New(WithObserver(recorder))

	if _, err := d.Decode(context.Background(), `{"foo": 1}`); err == nil {
		t.Fatal("Expected error")
	}

	ends := recorder.Find("span.end", observability.SpanDecode)
	if len(ends) != 1 {
		t.Fatalf("Expected span to end once, got %d", len(ends))
	}
	if v, _ := ends[0].Attr(observability.AttrDecodeOutcome); v != observability.OutcomeSchemaInvalid {
		t.Errorf("Expected schema_invalid outcome, got %v", v)
	}
	if v, _ := ends[0].Attr(observability.AttrValidationPath); v != "documentInfo" {
		t.Errorf("Expected validation path documentInfo, got %v", v)
	}
	if v, _ := ends[0].Attr(observability.AttrStatus); v != "error" {
		t.Errorf("Expected error status, got %v", v)
	}
	if got := len(recorder.Find("span.error", observability.SpanDecode)); got != 1 {
		t.Errorf("Expected recorded error, got %d", got)
	}
	if got := len(recorder.Find("log", "Decode failed")); got != 1 {
		t.Errorf("Expected failure log, got %d", got)
	}
	if got := len(recorder.Find("span.event", observability.EventAttemptFailed)); got != 2 {
		t.Errorf("Expected both attempts to fail, got %d", got)
	}
}

func TestDecode_NoObserverIsSilent(t *testing.T) {
	// A nil observer must not be dereferenced on any path.
	d := New(WithObserver(nil))
	for _, input := range []string{cleanDocument, `{"foo": 1}`, "none", "{:}"} {
		_, _ = d.Decode(context.Background(), input)
	}
}

func TestDecode_CallIDCorrelatesRecords(t *testing.T) {
	recorder := observability.NewRecorder()
	d := New(WithObserver(recorder))

	for i := 0; i < 2; i++ {
		if _, err := d.Decode(context.Background(), cleanDocument); err != nil {
			t.Fatalf("Decode() unexpected error: %v", err)
		}
	}

	starts := recorder.Find("span.start", observability.SpanDecode)
	logs := recorder.Find("log", "Decode completed")
	if len(starts) != 2 || len(logs) != 2 {
		t.Fatalf("Expected two spans and two completion logs, got %d and %d", len(starts), len(logs))
	}
	for i := range starts {
		spanID, _ := starts[i].Attr(observability.AttrDecodeID)
		logID, _ := logs[i].Attr(observability.AttrDecodeID)
		if spanID == "" || spanID != logID {
			t.Errorf("Call %d: span id %v does not match log id %v", i, spanID, logID)
		}
	}
	first, _ := starts[0].Attr(observability.AttrDecodeID)
	second, _ := starts[1].Attr(observability.AttrDecodeID)
	if first == second {
		t.Errorf("Expected distinct ids per call, got %v twice", first)
	}
}
