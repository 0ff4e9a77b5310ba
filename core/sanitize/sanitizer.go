package sanitize

import (
	"context"

	"github.com/leofalp/editdecode/providers/observability"
)

// Pass names used in diagnostics.
const (
	PassConservative = "conservative"
	PassAggressive   = "aggressive"
)

// Step is one named, pure rewrite of the pipeline.
type Step struct {
	Name  string
	Apply func(string) string
}

// conservativeSteps run after ExtractObject in pass 1.
var conservativeSteps = []Step{
	{Name: "strip_control", Apply: StripControl},
	{Name: "collapse_whitespace", Apply: CollapseWhitespace},
	{Name: "normalize_quotes", Apply: NormalizeQuotes},
	{Name: "unescape", Apply: Unescape},
}

// aggressiveSteps make up pass 2; library_repair is appended when enabled.
var aggressiveSteps = []Step{
	{Name: "escape_inner_quotes", Apply: EscapeInnerQuotes},
	{Name: "quote_keys", Apply: QuoteKeys},
	{Name: "quote_bare_values", Apply: QuoteBareValues},
	{Name: "insert_missing_commas", Apply: InsertMissingCommas},
	{Name: "remove_trailing_commas", Apply: RemoveTrailingCommas},
	{Name: "balance_brackets", Apply: BalanceBrackets},
}

var libraryStep = Step{Name: "library_repair", Apply: LibraryRepair}

// Steps returns the ordered step names of a pass, for diagnostics and docs.
func Steps(pass string) []string {
	var names []string
	switch pass {
	case PassConservative:
		names = append(names, "extract_object")
		for _, s := range conservativeSteps {
			names = append(names, s.Name)
		}
	case PassAggressive:
		for _, s := range aggressiveSteps {
			names = append(names, s.Name)
		}
		names = append(names, libraryStep.Name)
	}
	return names
}

// Sanitizer runs the two passes and reports which steps changed the text.
// The zero value is not usable; create one with New. A Sanitizer holds no
// per-call state and may be shared between goroutines.
type Sanitizer struct {
	logger        observability.Logger
	libraryRepair bool
}

// Option configures a Sanitizer.
type Option func(*Sanitizer)

// WithLogger routes step diagnostics to logger at DEBUG level.
func WithLogger(logger observability.Logger) Option {
	return func(s *Sanitizer) {
		s.logger = logger
	}
}

// WithLibraryRepair enables or disables the jsonrepair fallback at the end
// of the aggressive pass. It is enabled by default.
func WithLibraryRepair(enabled bool) Option {
	return func(s *Sanitizer) {
		s.libraryRepair = enabled
	}
}

// New creates a Sanitizer.
func New(opts ...Option) *Sanitizer {
	s := &Sanitizer{libraryRepair: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Conservative is pass 1: boundary extraction followed by the lossless
// clean-up steps. It fails only with ErrNoJSONObject.
func (s *Sanitizer) Conservative(ctx context.Context, raw string) (string, error) {
	text, err := ExtractObject(raw)
	if err != nil {
		return "", err
	}
	s.report(ctx, PassConservative, "extract_object", raw, text)
	return s.run(ctx, PassConservative, conservativeSteps, text), nil
}

// Aggressive is pass 2, applied to the output of Conservative. It always
// returns a string, which may still not be valid JSON.
func (s *Sanitizer) Aggressive(ctx context.Context, text string) string {
	text = s.run(ctx, PassAggressive, aggressiveSteps, text)
	if s.libraryRepair {
		text = s.run(ctx, PassAggressive, []Step{libraryStep}, text)
	}
	return text
}

func (s *Sanitizer) run(ctx context.Context, pass string, steps []Step, text string) string {
	for _, step := range steps {
		out := step.Apply(text)
		s.report(ctx, pass, step.Name, text, out)
		text = out
	}
	return text
}

func (s *Sanitizer) report(ctx context.Context, pass, step, before, after string) {
	if before == after {
		return
	}
	attrs := []observability.Attribute{
		observability.String(observability.AttrSanitizePass, pass),
		observability.String(observability.AttrSanitizeStep, step),
		observability.Int(observability.AttrInputLength, len(before)),
		observability.Int(observability.AttrOutputLength, len(after)),
	}
	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventSanitizeStep, attrs...)
	}
	if s.logger != nil {
		s.logger.Debug(ctx, "Sanitize step rewrote input", attrs...)
	}
}

// Conservative runs pass 1 with a default Sanitizer.
func Conservative(raw string) (string, error) {
	return New().Conservative(context.Background(), raw)
}

// Aggressive runs pass 2 with a default Sanitizer.
func Aggressive(text string) string {
	return New().Aggressive(context.Background(), text)
}
