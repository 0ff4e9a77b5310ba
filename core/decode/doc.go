// Package decode is the entry point of editdecode: it turns the raw text of
// an LLM document review into a validated review.DocumentEditResult.
//
// Decoding is a fixed ladder of at most two attempts. The first attempt runs
// the conservative sanitizer pass, parses the text and validates it. If
// either step fails, the aggressive pass is applied to the first attempt's
// text and the cycle runs once more. There is no other retry; re-asking the
// model is the caller's job.
//
// Every failure is a [*DecodeError] whose Kind is one of
// [KindNoJSONObject], [KindUnparseable] or [KindSchemaInvalid], matched by
// the sentinels [ErrNoJSONObject], [ErrUnparseable] and [ErrSchemaInvalid].
// Decode never panics and never substitutes a default document.
//
// Basic usage:
//
//	result, err := decode.Decode(raw)
//	if errors.Is(err, decode.ErrSchemaInvalid) {
//	    var de *decode.DecodeError
//	    errors.As(err, &de)
//	    log.Printf("model output invalid at %s", de.Path)
//	}
//
// A configured decoder reports to an observability provider and can
// normalize results:
//
//	d := decode.New(
//	    decode.WithObserver(slogobs.New()),
//	    decode.WithNormalizer(normalize.Normalize),
//	)
//	result, err := d.Decode(ctx, raw)
package decode
