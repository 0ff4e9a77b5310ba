package validate

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/leofalp/editdecode/core/review"
	"github.com/leofalp/editdecode/internal/jsonschema"
)

// FieldError is one schema violation reported by CheckSchema.
type FieldError struct {
	Field   string
	Message string
}

// SchemaError lists every schema violation found in a document.
type SchemaError struct {
	Errors []FieldError
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString("validate: schema check failed:")
	for i, fe := range e.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

var (
	schemaOnce   sync.Once
	schemaDoc    *jsonschema.Schema
	schemaJSON   string
	schemaLoader gojsonschema.JSONLoader
	schemaErr    error
)

func loadSchema() {
	schemaOnce.Do(func() {
		schemaDoc, schemaErr = jsonschema.Generate[review.DocumentEditResult]()
		if schemaErr != nil {
			return
		}
		schemaJSON = schemaDoc.String()
		schemaLoader = gojsonschema.NewStringLoader(schemaJSON)
	})
}

// Schema returns the JSON Schema of review.DocumentEditResult. It covers
// types, required members and enums; the cross-field rules (unique ids,
// position ranges, text requirements per type) are enforced only by
// Validate. The returned value is shared and must not be modified.
func Schema() (*jsonschema.Schema, error) {
	loadSchema()
	return schemaDoc, schemaErr
}

// CheckSchema validates the JSON text doc against Schema and returns a
// *SchemaError listing every violation, or nil when the document conforms.
// Unlike Validate it does not stop at the first problem.
func CheckSchema(doc string) error {
	loadSchema()
	if schemaErr != nil {
		return fmt.Errorf("validate: build schema: %w", schemaErr)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(doc))
	if err != nil {
		return fmt.Errorf("validate: load document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	violations := &SchemaError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		violations.Errors = append(violations.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return violations
}
