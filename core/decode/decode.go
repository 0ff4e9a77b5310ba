package decode

import (
	"context"
	"fmt"

	"github.com/leofalp/editdecode/core/review"
	"github.com/leofalp/editdecode/core/sanitize"
	"github.com/leofalp/editdecode/core/validate"
	"github.com/leofalp/editdecode/internal/utils"
	"github.com/leofalp/editdecode/providers/observability"
)

// maxAttempts is the length of the repair ladder: the conservative pass,
// then the aggressive pass layered on its output.
const maxAttempts = 2

// Normalizer post-processes a validated result. It must not modify its
// argument.
type Normalizer func(*review.DocumentEditResult) *review.DocumentEditResult

// Decoder turns raw model output into a validated review. A Decoder is
// immutable after New and safe for concurrent use; calls share no state.
type Decoder struct {
	sanitizer        *sanitize.Sanitizer
	observer         observability.Provider
	normalizer       Normalizer
	maxAttemptedText int
	libraryRepair    bool
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithObserver reports spans, metrics and logs for every call to observer.
// Without it the decoder produces no output.
func WithObserver(observer observability.Provider) Option {
	return func(d *Decoder) {
		d.observer = observer
	}
}

// WithNormalizer applies n to every successful result before it is returned,
// typically normalize.Normalize.
func WithNormalizer(n Normalizer) Option {
	return func(d *Decoder) {
		d.normalizer = n
	}
}

// WithMaxAttemptedText bounds, in runes, the AttemptedText carried by an
// Unparseable error. Values <= 0 select the default of 500.
func WithMaxAttemptedText(n int) Option {
	return func(d *Decoder) {
		d.maxAttemptedText = n
	}
}

// WithLibraryRepair enables or disables the jsonrepair fallback at the end of
// the aggressive pass. It is enabled by default.
func WithLibraryRepair(enabled bool) Option {
	return func(d *Decoder) {
		d.libraryRepair = enabled
	}
}

// New creates a Decoder.
func New(opts ...Option) *Decoder {
	d := &Decoder{
		maxAttemptedText: utils.DefaultMaxStringLength,
		libraryRepair:    true,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.maxAttemptedText <= 0 {
		d.maxAttemptedText = utils.DefaultMaxStringLength
	}

	sanitizerOpts := []sanitize.Option{sanitize.WithLibraryRepair(d.libraryRepair)}
	if d.observer != nil {
		sanitizerOpts = append(sanitizerOpts, sanitize.WithLogger(d.observer))
	}
	d.sanitizer = sanitize.New(sanitizerOpts...)
	return d
}

var defaultDecoder = New()

// Decode decodes raw with a default Decoder. See Decoder.Decode.
func Decode(raw string) (*review.DocumentEditResult, error) {
	return defaultDecoder.Decode(context.Background(), raw)
}

// Decode runs the fixed two-attempt ladder on raw:
//
//  1. conservative sanitize, parse, validate;
//  2. on failure, aggressive sanitize of the attempt-1 text, parse, validate.
//
// It returns the result or a *DecodeError, never both, and never a default
// document. A missing JSON object fails immediately. When both attempts fail
// the error describes the second one. ctx only carries the observability
// span; decoding is pure computation and is not cancelled.
func (d *Decoder) Decode(ctx context.Context, raw string) (result *review.DocumentEditResult, err error) {
	call := d.begin(ctx, raw)

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &DecodeError{
				Kind:          KindUnparseable,
				Attempts:      call.attempt,
				AttemptedText: utils.TruncateString(raw, d.maxAttemptedText),
				ParseMessage:  fmt.Sprintf("internal error: %v", r),
			}
		}
		call.end(result, err)
	}()

	text, sanitizeErr := d.sanitizer.Conservative(call.ctx, raw)
	if sanitizeErr != nil {
		call.attempt = 1
		return nil, noJSONObject(sanitizeErr)
	}

	var failure *DecodeError
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			text = d.sanitizer.Aggressive(call.ctx, text)
		}
		call.startAttempt(attempt, text)

		result, failure = d.attempt(attempt, text)
		if failure == nil {
			if d.normalizer != nil {
				result = d.normalizer(result)
			}
			return result, nil
		}
		call.failAttempt(failure)
	}
	return nil, failure
}

// attempt parses and validates one sanitized candidate.
func (d *Decoder) attempt(attempt int, text string) (*review.DocumentEditResult, *DecodeError) {
	value, err := parse(text)
	if err != nil {
		return nil, unparseable(attempt, text, d.maxAttemptedText, err)
	}
	result, err := validate.Validate(value)
	if err != nil {
		return nil, schemaInvalid(attempt, err)
	}
	return result, nil
}
