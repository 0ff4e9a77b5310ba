package observability

import (
	"context"
	"time"
)

// Provider is everything a decoder reports to: one span per Decode call,
// the decode counters and duration histogram, and log records. A nil
// Provider disables reporting.
type Provider interface {
	Tracer
	Metrics
	Logger
}

// Logger receives the decoder's log records. Sanitizer steps and failed
// attempts go to Debug, finished calls to Info, failed calls to Warn.
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...Attribute)
	Info(ctx context.Context, msg string, attrs ...Attribute)
	Warn(ctx context.Context, msg string, attrs ...Attribute)
	Error(ctx context.Context, msg string, attrs ...Attribute)
}

// Metrics hands out the instruments named in semconv.go. Implementations
// return the same instrument for the same name.
type Metrics interface {
	Counter(name string) Counter
	Histogram(name string) Histogram
}

type Counter interface {
	Add(ctx context.Context, value int64, attrs ...Attribute)
}

type Histogram interface {
	Record(ctx context.Context, value float64, attrs ...Attribute)
}

// Attribute is a key-value pair attached to spans, events, metrics and logs.
// Keys come from semconv.go.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value}
}

// Error stores the message of err under AttrError; a nil error yields an
// empty message.
func Error(err error) Attribute {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return Attribute{Key: AttrError, Value: msg}
}
