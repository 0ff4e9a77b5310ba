// Package review defines the document-edit model an LLM returns when it
// reviews a document: a [DocumentEditResult] holding summary information and
// one [ParagraphReview] per source paragraph, each carrying zero or more
// [EditOperation] values.
//
// The types carry both json and jsonschema struct tags so the same
// definitions drive decoding, structural validation and the JSON Schema that
// is published to the model.
package review
