// Package validate checks decoded JSON against the review data model.
//
// [Validate] is the structural validator used by the decoder: a single walk
// that stops at the first mismatch and reports it as a [*Failure] carrying a
// dotted path such as reviewContent[2].changes[0].severity.
//
// [Schema] exposes the same model as a JSON Schema document generated from
// the review types, and [CheckSchema] validates raw JSON text against it with
// gojsonschema, listing every violation at once. The schema cannot express
// the cross-field rules, so CheckSchema is a companion to Validate, not a
// replacement.
package validate
