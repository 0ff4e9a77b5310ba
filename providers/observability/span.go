package observability

import "context"

// Tracer opens spans. The returned context carries the span, which is how
// the sanitizer attaches its step events to the span of the Decode call
// that invoked it.
type Tracer interface {
	StartSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Span is one traced Decode call.
type Span interface {
	AddEvent(name string, attrs ...Attribute)
	SetAttributes(attrs ...Attribute)
	SetStatus(code StatusCode, description string)
	RecordError(err error)
	End()
}

// StatusCode is the outcome stored on a span before it ends. The zero value
// means no status was set.
type StatusCode int

const (
	StatusOK StatusCode = iota + 1
	StatusError
)

// String returns the value recorded under AttrStatus.
func (c StatusCode) String() string {
	switch c {
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	default:
		return "unset"
	}
}

// StatusAttrs renders a SetStatus call as span attributes.
func StatusAttrs(code StatusCode, description string) []Attribute {
	attrs := []Attribute{String(AttrStatus, code.String())}
	if description != "" {
		attrs = append(attrs, String(AttrStatusDescription, description))
	}
	return attrs
}

type spanKey struct{}

// ContextWithSpan returns a copy of ctx carrying span. A nil ctx is treated
// as context.Background.
func ContextWithSpan(ctx context.Context, span Span) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, spanKey{}, span)
}

// SpanFromContext returns the span stored by ContextWithSpan, or nil.
func SpanFromContext(ctx context.Context) Span {
	if ctx == nil {
		return nil
	}
	span, _ := ctx.Value(spanKey{}).(Span)
	return span
}
