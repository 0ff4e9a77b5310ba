package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across the sanitizer, validator and decoder.

// --- Sanitizer Attributes ---

const (
	// AttrSanitizePass is the sanitizer pass ("conservative" or "aggressive")
	AttrSanitizePass = "sanitize.pass"

	// AttrSanitizeStep is the name of the rewrite step that changed the text
	AttrSanitizeStep = "sanitize.step"

	// AttrInputLength is the length in bytes of the text entering a step or call
	AttrInputLength = "input.length"

	// AttrOutputLength is the length in bytes of the text leaving a step or call
	AttrOutputLength = "output.length"
)

// --- Decode Attributes ---

const (
	// AttrDecodeID is a random identifier correlating the records of one call
	AttrDecodeID = "decode.id"

	// AttrDecodeAttempt is the 1-based sanitize+parse+validate cycle number
	AttrDecodeAttempt = "decode.attempt"

	// AttrDecodeOutcome is the final outcome of a decode call
	AttrDecodeOutcome = "decode.outcome"

	// AttrDecodeRecovered is true when the aggressive pass was needed
	AttrDecodeRecovered = "decode.recovered"

	// AttrDecodeParagraphs is the number of paragraphs in a decoded result
	AttrDecodeParagraphs = "decode.paragraphs"

	// AttrDecodeChanges is the number of edit operations in a decoded result
	AttrDecodeChanges = "decode.changes"

	// AttrParseMessage is the message of a JSON syntax error
	AttrParseMessage = "parse.message"

	// AttrValidationPath is the dotted path of the first invalid field
	AttrValidationPath = "validation.path"

	// AttrValidationReason is why the field at AttrValidationPath was rejected
	AttrValidationReason = "validation.reason"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrErrorType is the error type/class
	AttrErrorType = "error.type"

	// AttrDuration is the operation duration
	AttrDuration = "duration"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanDecode is the span name for one decode call
	SpanDecode = "editdecode.decode"
)

// --- Event Names ---

const (
	// EventAttemptStart marks the start of a sanitize+parse+validate cycle
	EventAttemptStart = "decode.attempt.start"

	// EventAttemptFailed marks a cycle that did not produce a valid result
	EventAttemptFailed = "decode.attempt.failed"

	// EventSanitizeStep marks a sanitizer step that changed the text
	EventSanitizeStep = "sanitize.step"
)

// --- Outcomes ---

const (
	OutcomeOK            = "ok"
	OutcomeNoJSONObject  = "no_json_object"
	OutcomeUnparseable   = "unparseable"
	OutcomeSchemaInvalid = "schema_invalid"
)

// --- Metric Names ---

const (
	// MetricDecodeCount is the counter of decode calls, tagged with AttrDecodeOutcome
	MetricDecodeCount = "editdecode.decode.count"

	// MetricDecodeDuration is the histogram of decode durations in milliseconds
	MetricDecodeDuration = "editdecode.decode.duration"

	// MetricDecodeRecovered is the counter of results that needed the aggressive pass
	MetricDecodeRecovered = "editdecode.decode.recovered"
)
