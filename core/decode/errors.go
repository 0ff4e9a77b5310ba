package decode

import (
	"errors"
	"fmt"

	"github.com/leofalp/editdecode/core/validate"
	"github.com/leofalp/editdecode/internal/utils"
	"github.com/leofalp/editdecode/providers/observability"
)

// Sentinel errors matched by every *DecodeError of the corresponding Kind.
//
// Example:
//
//	if errors.Is(err, decode.ErrSchemaInvalid) {
//	    // valid JSON, wrong shape
//	}
var (
	ErrNoJSONObject  = errors.New("editdecode: no JSON object found")
	ErrUnparseable   = errors.New("editdecode: response is not valid JSON")
	ErrSchemaInvalid = errors.New("editdecode: response does not match the review model")
)

// Kind is the closed set of decode failures.
type Kind int

const (
	// KindNoJSONObject means the input holds no '{' ... '}' pair. It is not
	// retried.
	KindNoJSONObject Kind = iota + 1
	// KindUnparseable means the text was still not valid JSON after both
	// sanitizer passes.
	KindUnparseable
	// KindSchemaInvalid means the text parsed but does not match the model.
	KindSchemaInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNoJSONObject:
		return observability.OutcomeNoJSONObject
	case KindUnparseable:
		return observability.OutcomeUnparseable
	case KindSchemaInvalid:
		return observability.OutcomeSchemaInvalid
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindNoJSONObject:
		return ErrNoJSONObject
	case KindUnparseable:
		return ErrUnparseable
	case KindSchemaInvalid:
		return ErrSchemaInvalid
	default:
		return nil
	}
}

// DecodeError is the only error type returned by Decode. The fields that
// apply depend on Kind:
//
//   - KindUnparseable: AttemptedText (truncated) and ParseMessage.
//   - KindSchemaInvalid: Path, Found and Reason of the first mismatch.
//
// Attempts is the number of sanitize+parse+validate cycles that ran.
type DecodeError struct {
	Kind     Kind
	Attempts int

	AttemptedText string
	ParseMessage  string

	Path   string
	Found  any
	Reason string

	cause error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case KindUnparseable:
		return fmt.Sprintf("%v: %s", ErrUnparseable, e.ParseMessage)
	case KindSchemaInvalid:
		path := e.Path
		if path == "" {
			path = "(root)"
		}
		return fmt.Sprintf("%v: %s %s (found %s)", ErrSchemaInvalid, path, e.Reason, validate.Describe(e.Found))
	case KindNoJSONObject:
		return ErrNoJSONObject.Error()
	default:
		return fmt.Sprintf("editdecode: %v", e.Kind)
	}
}

// Unwrap exposes the Kind sentinel and the underlying cause, so errors.Is
// matches the sentinel and errors.As reaches a *validate.Failure or a
// *json.SyntaxError.
func (e *DecodeError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

func noJSONObject(cause error) *DecodeError {
	return &DecodeError{Kind: KindNoJSONObject, Attempts: 1, cause: cause}
}

func unparseable(attempt int, text string, maxText int, cause error) *DecodeError {
	return &DecodeError{
		Kind:          KindUnparseable,
		Attempts:      attempt,
		AttemptedText: utils.TruncateString(text, maxText),
		ParseMessage:  parseMessage(cause),
		cause:         cause,
	}
}

func schemaInvalid(attempt int, cause error) *DecodeError {
	e := &DecodeError{Kind: KindSchemaInvalid, Attempts: attempt, cause: cause}
	var failure *validate.Failure
	if errors.As(cause, &failure) {
		e.Path, e.Found, e.Reason = failure.Path, failure.Found, failure.Reason
	} else {
		e.Reason = cause.Error()
	}
	return e
}
