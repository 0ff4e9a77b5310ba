package decode

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/leofalp/editdecode/core/review"
	"github.com/leofalp/editdecode/internal/utils"
	"github.com/leofalp/editdecode/providers/observability"
)

// callObserver reports one Decode call. Every method is a no-op when the
// decoder has no observer.
type callObserver struct {
	ctx      context.Context
	observer observability.Provider
	span     observability.Span
	watch    *utils.Stopwatch
	id       string
	attempt  int
}

func (d *Decoder) begin(ctx context.Context, raw string) *callObserver {
	c := &callObserver{ctx: ctx, observer: d.observer, watch: utils.StartStopwatch()}
	if c.observer == nil {
		return c
	}
	c.id = uuid.NewString()
	c.ctx, c.span = c.observer.StartSpan(ctx, observability.SpanDecode,
		observability.String(observability.AttrDecodeID, c.id),
		observability.Int(observability.AttrInputLength, len(raw)),
	)
	return c
}

func (c *callObserver) startAttempt(attempt int, text string) {
	c.attempt = attempt
	if c.observer == nil {
		return
	}
	c.watch.Lap()
	c.span.AddEvent(observability.EventAttemptStart,
		observability.Int(observability.AttrDecodeAttempt, attempt),
		observability.Int(observability.AttrInputLength, len(text)),
	)
}

func (c *callObserver) failAttempt(failure *DecodeError) {
	if c.observer == nil {
		return
	}
	attrs := append(failureAttrs(failure),
		observability.String(observability.AttrDecodeID, c.id),
		observability.Int(observability.AttrDecodeAttempt, failure.Attempts),
		observability.Duration(observability.AttrDuration, c.watch.Lap()),
	)
	c.span.AddEvent(observability.EventAttemptFailed, attrs...)
	c.observer.Debug(c.ctx, "Decode attempt failed", attrs...)
}

func (c *callObserver) end(result *review.DocumentEditResult, err error) {
	if c.observer == nil {
		return
	}
	elapsed := c.watch.Total()

	outcome := observability.OutcomeOK
	var decodeErr *DecodeError
	if err != nil {
		outcome = observability.OutcomeUnparseable
		if errors.As(err, &decodeErr) {
			outcome = decodeErr.Kind.String()
		}
	}
	recovered := err == nil && c.attempt > 1

	c.observer.Histogram(observability.MetricDecodeDuration).Record(c.ctx, utils.Milliseconds(elapsed),
		observability.String(observability.AttrDecodeOutcome, outcome),
	)
	c.observer.Counter(observability.MetricDecodeCount).Add(c.ctx, 1,
		observability.String(observability.AttrDecodeOutcome, outcome),
	)

	attrs := []observability.Attribute{
		observability.String(observability.AttrDecodeID, c.id),
		observability.String(observability.AttrDecodeOutcome, outcome),
		observability.Int(observability.AttrDecodeAttempt, c.attempt),
		observability.Duration(observability.AttrDuration, elapsed),
	}

	if err != nil {
		if decodeErr != nil {
			attrs = append(attrs, failureAttrs(decodeErr)...)
		}
		c.span.SetAttributes(attrs...)
		c.span.RecordError(err)
		c.span.SetStatus(observability.StatusError, "decode failed")
		c.span.End()
		c.observer.Warn(c.ctx, "Decode failed", append(attrs, observability.Error(err))...)
		return
	}

	if recovered {
		c.observer.Counter(observability.MetricDecodeRecovered).Add(c.ctx, 1)
	}
	changes := 0
	for _, p := range result.ReviewContent {
		changes += len(p.Changes)
	}
	attrs = append(attrs,
		observability.Bool(observability.AttrDecodeRecovered, recovered),
		observability.Int(observability.AttrDecodeParagraphs, len(result.ReviewContent)),
		observability.Int(observability.AttrDecodeChanges, changes),
	)
	c.span.SetAttributes(attrs...)
	c.span.SetStatus(observability.StatusOK, "")
	c.span.End()
	c.observer.Info(c.ctx, "Decode completed", attrs...)
}

func failureAttrs(e *DecodeError) []observability.Attribute {
	attrs := []observability.Attribute{
		observability.String(observability.AttrErrorType, e.Kind.String()),
	}
	switch e.Kind {
	case KindUnparseable:
		attrs = append(attrs, observability.String(observability.AttrParseMessage, e.ParseMessage))
	case KindSchemaInvalid:
		attrs = append(attrs,
			observability.String(observability.AttrValidationPath, e.Path),
			observability.String(observability.AttrValidationReason, e.Reason),
		)
	}
	return attrs
}
