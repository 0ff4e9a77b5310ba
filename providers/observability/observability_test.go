package observability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestAttributeConstructors(t *testing.T) {
	tests := []struct {
		name      string
		attr      Attribute
		wantKey   string
		wantValue any
	}{
		{"string", String("step", "quote_keys"), "step", "quote_keys"},
		{"int", Int("attempt", 2), "attempt", 2},
		{"bool", Bool("recovered", true), "recovered", true},
		{"duration", Duration("latency", 5*time.Second), "latency", 5 * time.Second},
		{"error", Error(errors.New("boom")), "error", "boom"},
		{"nil error", Error(nil), "error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.wantKey {
				t.Errorf("Expected key '%s', got '%s'", tt.wantKey, tt.attr.Key)
			}
			if tt.attr.Value != tt.wantValue {
				t.Errorf("Expected value '%v', got '%v'", tt.wantValue, tt.attr.Value)
			}
		})
	}
}

func TestRecorder_LogsAndMetrics(t *testing.T) {
	ctx := context.Background()
	recorder := NewRecorder()

	recorder.Debug(ctx, "d", String(AttrSanitizeStep, "balance_brackets"))
	recorder.Info(ctx, "i")
	recorder.Warn(ctx, "w")
	recorder.Error(ctx, "e")
	recorder.Counter(MetricDecodeCount).Add(ctx, 1, String(AttrDecodeOutcome, OutcomeOK))
	recorder.Histogram(MetricDecodeDuration).Record(ctx, 1.5)

	entries := recorder.Entries()
	if len(entries) != 6 {
		t.Fatalf("Expected 6 entries, got %d", len(entries))
	}

	levels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	for i, level := range levels {
		if entries[i].Kind != "log" || entries[i].Level != level {
			t.Errorf("Entry %d: expected log at %s, got %+v", i, level, entries[i])
		}
	}
	if v, ok := entries[0].Attr(AttrSanitizeStep); !ok || v != "balance_brackets" {
		t.Errorf("Expected step attribute on debug entry, got %v", v)
	}

	counters := recorder.Find("counter", MetricDecodeCount)
	if len(counters) != 1 || counters[0].Value != 1 {
		t.Errorf("Expected one counter increment of 1, got %+v", counters)
	}
	histograms := recorder.Find("histogram", MetricDecodeDuration)
	if len(histograms) != 1 || histograms[0].Value != 1.5 {
		t.Errorf("Expected one histogram observation of 1.5, got %+v", histograms)
	}

	recorder.Reset()
	if len(recorder.Entries()) != 0 {
		t.Error("Expected Reset to clear entries")
	}
}

func TestRecorder_RecordErrorIgnoresNil(t *testing.T) {
	recorder := NewRecorder()
	_, span := recorder.StartSpan(context.Background(), "decode")

	span.RecordError(nil)
	span.RecordError(errors.New("schema invalid"))

	errs := recorder.Find("span.error", "decode")
	if len(errs) != 1 {
		t.Fatalf("Expected exactly one recorded error, got %d", len(errs))
	}
	if v, _ := errs[0].Attr(AttrError); v != "schema invalid" {
		t.Errorf("Expected error message attribute, got %v", v)
	}
}

func TestRecorder_Concurrent(t *testing.T) {
	recorder := NewRecorder()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			recorder.Debug(ctx, "step")
			recorder.Counter(MetricDecodeCount).Add(ctx, 1)
		}()
	}
	wg.Wait()

	if got := len(recorder.Entries()); got != 100 {
		t.Errorf("Expected 100 entries, got %d", got)
	}
}

func BenchmarkAttribute_String(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = String("key", "value")
	}
}
