// Package observability defines what a Decode call reports and to whom.
//
// A decoder is given a [Provider] through decode.WithObserver. Each call
// opens one span named [SpanDecode], stores it in the context with
// [ContextWithSpan] so the sanitizer can add one [EventSanitizeStep] per
// rewrite, and ends it with the outcome. The decode counters and duration
// histogram are updated as the span ends. Attribute keys, event, span and
// metric names live in semconv.go.
//
// [Recorder] keeps every observation in memory; the CLI prints it for
// decode --trace and the tests assert on it. The slogobs sub-package writes
// the same observations as log/slog records.
package observability
