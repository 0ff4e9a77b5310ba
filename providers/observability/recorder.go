package observability

import (
	"context"
	"sync"
)

// Entry is one observation captured by a Recorder: a log line, a span event,
// or a metric update.
type Entry struct {
	Kind  string // "log", "span.start", "span.event", "span.error", "span.end", "counter", "histogram"
	Level string // log level for Kind "log"
	Name  string // message, span, event or metric name
	Value float64
	Attrs []Attribute
}

// Attr returns the value of the first attribute named key.
func (e Entry) Attr(key string) (any, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return nil, false
}

// Recorder is an in-memory Provider that keeps every observation in order.
// It is safe for concurrent use and is meant for tests and for tools that
// report diagnostics after the fact.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

var _ Provider = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(e Entry) {
	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Find returns the entries of the given kind and name.
func (r *Recorder) Find(kind, name string) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.Kind == kind && e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops all recorded entries.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}

func (r *Recorder) StartSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span) {
	r.add(Entry{Kind: "span.start", Name: name, Attrs: attrs})
	span := &recordedSpan{recorder: r, name: name}
	return ContextWithSpan(ctx, span), span
}

func (r *Recorder) Counter(name string) Counter {
	return recordedMetric{recorder: r, kind: "counter", name: name}
}

func (r *Recorder) Histogram(name string) Histogram {
	return recordedMetric{recorder: r, kind: "histogram", name: name}
}

func (r *Recorder) Debug(_ context.Context, msg string, attrs ...Attribute) {
	r.add(Entry{Kind: "log", Level: "DEBUG", Name: msg, Attrs: attrs})
}

func (r *Recorder) Info(_ context.Context, msg string, attrs ...Attribute) {
	r.add(Entry{Kind: "log", Level: "INFO", Name: msg, Attrs: attrs})
}

func (r *Recorder) Warn(_ context.Context, msg string, attrs ...Attribute) {
	r.add(Entry{Kind: "log", Level: "WARN", Name: msg, Attrs: attrs})
}

func (r *Recorder) Error(_ context.Context, msg string, attrs ...Attribute) {
	r.add(Entry{Kind: "log", Level: "ERROR", Name: msg, Attrs: attrs})
}

type recordedSpan struct {
	recorder *Recorder
	name     string
	mu       sync.Mutex
	attrs    []Attribute
}

func (s *recordedSpan) End() {
	s.mu.Lock()
	attrs := append([]Attribute(nil), s.attrs...)
	s.mu.Unlock()
	s.recorder.add(Entry{Kind: "span.end", Name: s.name, Attrs: attrs})
}

func (s *recordedSpan) SetAttributes(attrs ...Attribute) {
	s.mu.Lock()
	s.attrs = append(s.attrs, attrs...)
	s.mu.Unlock()
}

func (s *recordedSpan) SetStatus(code StatusCode, description string) {
	s.SetAttributes(StatusAttrs(code, description)...)
}

func (s *recordedSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.recorder.add(Entry{Kind: "span.error", Name: s.name, Attrs: []Attribute{Error(err)}})
}

func (s *recordedSpan) AddEvent(name string, attrs ...Attribute) {
	s.recorder.add(Entry{Kind: "span.event", Name: name, Attrs: attrs})
}

type recordedMetric struct {
	recorder *Recorder
	kind     string
	name     string
}

func (m recordedMetric) Add(_ context.Context, value int64, attrs ...Attribute) {
	m.recorder.add(Entry{Kind: m.kind, Name: m.name, Value: float64(value), Attrs: attrs})
}

func (m recordedMetric) Record(_ context.Context, value float64, attrs ...Attribute) {
	m.recorder.add(Entry{Kind: m.kind, Name: m.name, Value: value, Attrs: attrs})
}
