package slogobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/leofalp/editdecode/providers/observability"
)

// Observer writes everything a decoder reports as slog records. Log calls
// keep their level. Span transitions and metric updates are written at
// LevelTrace, so DEBUG shows sanitizer steps and failed attempts without the
// span and metric bookkeeping.
type Observer struct {
	logger *slog.Logger

	mu     sync.Mutex
	totals map[string]int64
}

var _ observability.Provider = (*Observer)(nil)

// New builds an Observer. Without options it writes compact lines to stderr
// at the level and format named by EDITDECODE_LOG_LEVEL and
// EDITDECODE_LOG_FORMAT.
//
//	observer := slogobs.New(slogobs.WithFormat(slogobs.FormatJSON), slogobs.WithLevel(slog.LevelDebug))
//	decoder := decode.New(decode.WithObserver(observer))
func New(opts ...Option) *Observer {
	s := newSettings(opts)
	logger := s.logger
	if logger == nil {
		logger = slog.New(NewHandler(&s.handler))
	}
	return &Observer{logger: logger, totals: make(map[string]int64)}
}

func (o *Observer) emit(ctx context.Context, level slog.Level, msg string, head []slog.Attr, attrs []observability.Attribute) {
	if !o.logger.Enabled(ctx, level) {
		return
	}
	for _, a := range attrs {
		head = append(head, slog.Any(a.Key, a.Value))
	}
	o.logger.LogAttrs(ctx, level, msg, head...)
}

func (o *Observer) Debug(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.emit(ctx, slog.LevelDebug, msg, nil, attrs)
}

func (o *Observer) Info(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.emit(ctx, slog.LevelInfo, msg, nil, attrs)
}

func (o *Observer) Warn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.emit(ctx, slog.LevelWarn, msg, nil, attrs)
}

func (o *Observer) Error(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.emit(ctx, slog.LevelError, msg, nil, attrs)
}

// StartSpan logs the span start and returns a context carrying the span.
// Attributes given here and through SetAttributes are repeated on the end
// record, together with the elapsed time.
func (o *Observer) StartSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	sp := &span{
		observer: o,
		ctx:      ctx,
		name:     name,
		start:    time.Now(),
		attrs:    append([]observability.Attribute(nil), attrs...),
	}
	o.emit(ctx, LevelTrace, "Span started", sp.head("span.start"), attrs)
	return observability.ContextWithSpan(ctx, sp), sp
}

type span struct {
	observer *Observer
	ctx      context.Context
	name     string
	start    time.Time

	mu    sync.Mutex
	attrs []observability.Attribute
}

func (s *span) head(event string) []slog.Attr {
	return []slog.Attr{slog.String("span", s.name), slog.String("event", event)}
}

func (s *span) AddEvent(name string, attrs ...observability.Attribute) {
	s.observer.emit(s.ctx, LevelTrace, "Span event", s.head(name), attrs)
}

func (s *span) SetAttributes(attrs ...observability.Attribute) {
	s.mu.Lock()
	s.attrs = append(s.attrs, attrs...)
	s.mu.Unlock()
}

func (s *span) SetStatus(code observability.StatusCode, description string) {
	s.SetAttributes(observability.StatusAttrs(code, description)...)
}

func (s *span) RecordError(err error) {
	if err == nil {
		return
	}
	attr := observability.Error(err)
	s.SetAttributes(attr)
	s.observer.emit(s.ctx, LevelTrace, "Span error", s.head("error"), []observability.Attribute{attr})
}

func (s *span) End() {
	s.mu.Lock()
	attrs := append([]observability.Attribute(nil), s.attrs...)
	s.mu.Unlock()

	head := append(s.head("span.end"), slog.Duration("duration", time.Since(s.start)))
	s.observer.emit(s.ctx, LevelTrace, "Span ended", head, attrs)
}

// Counter returns the named counter. Every Add logs the delta and the running
// total kept by the Observer.
func (o *Observer) Counter(name string) observability.Counter {
	return counter{observer: o, name: name}
}

// Histogram returns the named histogram. Observations are logged, not
// aggregated.
func (o *Observer) Histogram(name string) observability.Histogram {
	return histogram{observer: o, name: name}
}

type counter struct {
	observer *Observer
	name     string
}

func (c counter) Add(ctx context.Context, value int64, attrs ...observability.Attribute) {
	c.observer.mu.Lock()
	c.observer.totals[c.name] += value
	total := c.observer.totals[c.name]
	c.observer.mu.Unlock()

	c.observer.emit(ctx, LevelTrace, "Counter", []slog.Attr{
		slog.String("metric", c.name),
		slog.String("type", "counter"),
		slog.Int64("value", total),
		slog.Int64("delta", value),
	}, attrs)
}

type histogram struct {
	observer *Observer
	name     string
}

func (h histogram) Record(ctx context.Context, value float64, attrs ...observability.Attribute) {
	h.observer.emit(ctx, LevelTrace, "Histogram", []slog.Attr{
		slog.String("metric", h.name),
		slog.String("type", "histogram"),
		slog.Float64("value", value),
	}, attrs)
}
