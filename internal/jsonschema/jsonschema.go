package jsonschema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Draft is the JSON Schema dialect emitted for root schemas.
const Draft = "http://json-schema.org/draft-07/schema#"

// Schema is the subset of JSON Schema needed to describe Go data models:
// types, object properties, required members, array items, enums and
// recursive references.
type Schema struct {
	Dialect     string   `json:"$schema,omitempty"`
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of an object, each with its own schema
	Properties map[string]*Schema `json:"properties,omitempty"`
	// Items is the schema of array elements
	Items *Schema `json:"items,omitempty"`
	// AdditionalProperties is the value schema of map types
	AdditionalProperties any `json:"additionalProperties,omitempty"`
	// Minimum bounds numeric values; set for unsigned integers
	Minimum *float64 `json:"minimum,omitempty"`
	Enum    []any    `json:"enum,omitempty"`
	// Ref points into Defs for recursive types
	Ref  string             `json:"$ref,omitempty"`
	Defs map[string]*Schema `json:"$defs,omitempty"`
	// Nullable widens Type to [Type, "null"] when the schema is marshaled
	Nullable bool `json:"-"`
}

// MarshalJSON emits the type as an array for nullable schemas.
func (s Schema) MarshalJSON() ([]byte, error) {
	type plain Schema
	if !s.Nullable || s.Type == "" {
		return json.Marshal(plain(s))
	}
	return json.Marshal(struct {
		plain
		Type []string `json:"type"`
	}{plain(s), []string{s.Type, "null"}})
}

// Generate derives the schema of T by reflection. Struct members follow
// encoding/json naming; a member is required unless it is a pointer or
// tagged omitempty, or when its jsonschema tag says "required". Members that
// are not required also accept null, matching what encoding/json decodes.
//
// Supported jsonschema tag items, separated by commas:
//
//	description=text   (text must not contain a comma)
//	enum=value         (repeatable; converted to the field's kind)
//	required
func Generate[T any]() (*Schema, error) {
	g := &generator{
		visited: make(map[reflect.Type]string),
		defs:    make(map[string]*Schema),
	}

	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var (
		schema *Schema
		err    error
	)
	if t.Kind() == reflect.Struct {
		// The root is always expanded in place, even when it is recursive.
		g.visited[t] = defName(t)
		schema, err = g.object(t)
		if err == nil && isRecursive(t) {
			g.defs[defName(t)] = schema.shallowCopy()
		}
	} else {
		schema, err = g.schemaOf(t)
	}
	if err != nil {
		return nil, err
	}

	schema.Dialect = Draft
	if len(g.defs) > 0 {
		schema.Defs = g.defs
	}
	return schema, nil
}

type generator struct {
	visited map[reflect.Type]string // types already given a definition name
	defs    map[string]*Schema
}

func (g *generator) schemaOf(t reflect.Type) (*Schema, error) {
	switch t.Kind() {
	case reflect.String:
		return &Schema{Type: "string"}, nil
	case reflect.Bool:
		return &Schema{Type: "boolean"}, nil
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &Schema{Type: "integer"}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		zero := 0.0
		return &Schema{Type: "integer", Minimum: &zero}, nil
	case reflect.Slice, reflect.Array:
		items, err := g.schemaOf(t.Elem())
		if err != nil {
			return nil, err
		}
		return &Schema{Type: "array", Items: items}, nil
	case reflect.Map:
		values, err := g.schemaOf(t.Elem())
		if err != nil {
			return nil, err
		}
		return &Schema{Type: "object", AdditionalProperties: values}, nil
	case reflect.Ptr:
		return g.schemaOf(t.Elem())
	case reflect.Struct:
		return g.nested(t)
	default:
		return &Schema{Type: "object"}, nil
	}
}

// nested inlines non-recursive structs and moves recursive ones to $defs.
func (g *generator) nested(t reflect.Type) (*Schema, error) {
	if name, ok := g.visited[t]; ok {
		return &Schema{Ref: "#/$defs/" + name}, nil
	}
	if !isRecursive(t) {
		return g.object(t)
	}

	name := defName(t)
	g.visited[t] = name
	def, err := g.object(t)
	if err != nil {
		return nil, err
	}
	g.defs[name] = def
	return &Schema{Ref: "#/$defs/" + name}, nil
}

// object builds the properties and required list of a struct.
func (g *generator) object(t reflect.Type) (*Schema, error) {
	schema := &Schema{Type: "object", Properties: map[string]*Schema{}}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, omitEmpty, skip := jsonName(field)
		if skip {
			continue
		}

		fieldSchema, err := g.schemaOf(field.Type)
		if err != nil {
			return nil, err
		}

		requiredByTag := false
		if fieldSchema.Ref == "" {
			requiredByTag, err = applyTag(field, fieldSchema)
			if err != nil {
				return nil, fmt.Errorf("jsonschema: field %s.%s: %w", t.Name(), field.Name, err)
			}
		}

		schema.Properties[name] = fieldSchema
		if (field.Type.Kind() != reflect.Ptr && !omitEmpty) || requiredByTag {
			schema.Required = append(schema.Required, name)
		} else if fieldSchema.Ref == "" {
			fieldSchema.Nullable = true
			if len(fieldSchema.Enum) > 0 {
				fieldSchema.Enum = append(fieldSchema.Enum, nil)
			}
		}
	}
	return schema, nil
}

func jsonName(field reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name = field.Name
	if tag == "" {
		return name, false, false
	}
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		name = parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" || opt == "omitzero" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

// applyTag copies the jsonschema tag settings onto schema and reports
// whether the tag marks the field as required.
func applyTag(field reflect.StructField, schema *Schema) (bool, error) {
	tag := field.Tag.Get("jsonschema")
	if tag == "" {
		return false, nil
	}

	fieldType := field.Type
	for fieldType.Kind() == reflect.Ptr {
		fieldType = fieldType.Elem()
	}

	required := false
	for _, item := range strings.Split(tag, ",") {
		key, value, hasValue := strings.Cut(strings.TrimSpace(item), "=")
		switch {
		case !hasValue && key == "required":
			required = true
		case key == "description":
			schema.Description = value
		case key == "enum":
			v, err := enumValue(fieldType, value)
			if err != nil {
				return false, err
			}
			schema.Enum = append(schema.Enum, v)
		}
	}
	return required, nil
}

// enumValue converts a tag value to the kind of the field it constrains.
func enumValue(t reflect.Type, value string) (any, error) {
	switch t.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %q as integer: %w", value, err)
		}
		return v, nil
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %q as number: %w", value, err)
		}
		return v, nil
	case reflect.Bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %q as boolean: %w", value, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("enum tag unsupported for type %v", t)
	}
}

// isRecursive reports whether t can reach itself through its fields.
func isRecursive(t reflect.Type) bool {
	return reaches(t, t, make(map[reflect.Type]bool))
}

func reaches(target, current reflect.Type, visited map[reflect.Type]bool) bool {
	for current.Kind() == reflect.Ptr || current.Kind() == reflect.Slice ||
		current.Kind() == reflect.Array || current.Kind() == reflect.Map {
		current = current.Elem()
	}
	if current.Kind() != reflect.Struct || visited[current] {
		return false
	}
	visited[current] = true

	for i := 0; i < current.NumField(); i++ {
		field := current.Field(i)
		if !field.IsExported() {
			continue
		}
		ft := field.Type
		for ft.Kind() == reflect.Ptr || ft.Kind() == reflect.Slice ||
			ft.Kind() == reflect.Array || ft.Kind() == reflect.Map {
			ft = ft.Elem()
		}
		if ft == target || reaches(target, ft, visited) {
			return true
		}
	}
	return false
}

func defName(t reflect.Type) string {
	if t.Name() != "" {
		return strings.ToLower(t.Name())
	}
	return "anonymousStruct"
}

func (s *Schema) shallowCopy() *Schema {
	cp := *s
	cp.Dialect = ""
	cp.Defs = nil
	return &cp
}

// JSON marshals the schema, indented when indent is true.
func (s *Schema) JSON(indent bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = json.Marshal(s)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}
	return data, nil
}

// String returns the compact JSON form of the schema.
func (s *Schema) String() string {
	data, err := s.JSON(false)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(data)
}
