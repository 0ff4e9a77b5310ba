package jsonschema

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestGeneratesPrimitiveSchemas(t *testing.T) {
	tests := []struct {
		name string
		gen  func() (*Schema, error)
		want string
	}{
		{"string", Generate[string], "string"},
		{"int", Generate[int], "integer"},
		{"float", Generate[float32], "number"},
		{"bool", Generate[bool], "boolean"},
		{"slice", Generate[[]string], "array"},
		{"map", Generate[map[string]int], "object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := tt.gen()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if schema.Type != tt.want {
				t.Errorf("Expected type '%s', got '%s'", tt.want, schema.Type)
			}
			if schema.Dialect != Draft {
				t.Errorf("Expected root $schema %q, got %q", Draft, schema.Dialect)
			}
		})
	}
}

func TestUnsignedIntegersHaveMinimum(t *testing.T) {
	schema, err := Generate[uint8]()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if schema.Minimum == nil || *schema.Minimum != 0 {
		t.Errorf("Expected minimum 0, got %v", schema.Minimum)
	}
}

func TestHandlesJSONTags(t *testing.T) {
	type Paragraph struct {
		ID       string `json:"id"`
		Internal string `json:"-"`
		Note     string `json:"note,omitempty"`
		Pointer  *int
		hidden   string
	}

	schema, err := Generate[Paragraph]()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := schema.Properties["id"]; !ok {
		t.Error("Expected 'id' property")
	}
	if _, ok := schema.Properties["Internal"]; ok {
		t.Error("Expected json:\"-\" field to be skipped")
	}
	if _, ok := schema.Properties["hidden"]; ok {
		t.Error("Expected unexported field to be skipped")
	}
	if len(schema.Required) != 1 || schema.Required[0] != "id" {
		t.Errorf("Expected only 'id' to be required, got %v", schema.Required)
	}
}

func TestNestedStructsCarryRequiredAndTags(t *testing.T) {
	type Change struct {
		Severity string `json:"severity" jsonschema:"enum=error,enum=warning"`
		Category string `json:"category,omitempty" jsonschema:"description=Issue class"`
	}
	type Paragraph struct {
		Changes []Change `json:"changes"`
	}
	type Result struct {
		Paragraphs []Paragraph `json:"paragraphs"`
	}

	schema, err := Generate[Result]()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	change := schema.Properties["paragraphs"].Items.Properties["changes"].Items
	if change == nil || change.Type != "object" {
		t.Fatalf("Expected inline object schema for Change, got %+v", change)
	}
	if len(change.Required) != 1 || change.Required[0] != "severity" {
		t.Errorf("Expected nested required [severity], got %v", change.Required)
	}
	if got := change.Properties["severity"].Enum; len(got) != 2 || got[0] != "error" || got[1] != "warning" {
		t.Errorf("Expected nested enum [error warning], got %v", got)
	}
	if got := change.Properties["category"].Description; got != "Issue class" {
		t.Errorf("Expected nested description, got %q", got)
	}
	if schema.Defs != nil {
		t.Error("Did not expect $defs for non-recursive structures")
	}
}

func TestEnumConversion(t *testing.T) {
	type Tagged struct {
		Level int     `json:"level" jsonschema:"enum=1,enum=2"`
		Ratio float64 `json:"ratio" jsonschema:"enum=0.5"`
		Flag  bool    `json:"flag" jsonschema:"enum=true"`
	}

	schema, err := Generate[Tagged]()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if schema.Properties["level"].Enum[1] != int64(2) {
		t.Errorf("Expected int64 enum value, got %T", schema.Properties["level"].Enum[1])
	}
	if schema.Properties["ratio"].Enum[0] != 0.5 {
		t.Errorf("Expected float enum value, got %v", schema.Properties["ratio"].Enum[0])
	}
	if schema.Properties["flag"].Enum[0] != true {
		t.Errorf("Expected bool enum value, got %v", schema.Properties["flag"].Enum[0])
	}
}

func TestInvalidEnumIsAnError(t *testing.T) {
	type Bad struct {
		Level int `json:"level" jsonschema:"enum=high"`
	}

	if _, err := Generate[Bad](); err == nil {
		t.Fatal("Expected error for non-integer enum on int field")
	}
}

func TestRequiredTag(t *testing.T) {
	type Opt struct {
		Name *string `json:"name" jsonschema:"required"`
	}

	schema, err := Generate[Opt]()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(schema.Required) != 1 || schema.Required[0] != "name" {
		t.Errorf("Expected pointer field marked required by tag, got %v", schema.Required)
	}
}

type treeNode struct {
	Value    string      `json:"value"`
	Children []*treeNode `json:"children"`
}

type ping struct {
	Pong *pong `json:"pong"`
}

type pong struct {
	Ping *ping `json:"ping"`
}

func TestHandlesRecursiveStruct(t *testing.T) {
	schema, err := Generate[treeNode]()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if schema.Type != "object" {
		t.Fatalf("Expected root object, got %q", schema.Type)
	}
	items := schema.Properties["children"].Items
	if items.Ref != "#/$defs/treenode" {
		t.Errorf("Expected self reference, got %q", items.Ref)
	}
	if _, ok := schema.Defs["treenode"]; !ok {
		t.Error("Expected treenode definition in $defs")
	}
}

func TestHandlesMutualRecursion(t *testing.T) {
	schema, err := Generate[ping]()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if schema.Properties["pong"].Ref != "#/$defs/pong" {
		t.Errorf("Expected pong reference, got %q", schema.Properties["pong"].Ref)
	}
	if def := schema.Defs["pong"]; def == nil || def.Properties["ping"].Ref != "#/$defs/ping" {
		t.Errorf("Expected pong definition to reference ping, got %+v", def)
	}
}

func TestJSON(t *testing.T) {
	type Simple struct {
		Name string `json:"name"`
	}
	schema, err := Generate[Simple]()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	indented, err := schema.JSON(true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(string(indented), "\n  ") {
		t.Error("Expected indented output")
	}

	compact := schema.String()
	if strings.Contains(compact, "\n") {
		t.Error("Expected compact output from String")
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(compact), &decoded); err != nil {
		t.Fatalf("Expected valid JSON, got error: %v", err)
	}
	if decoded["$schema"] != Draft {
		t.Errorf("Expected $schema in output, got %v", decoded["$schema"])
	}
}

func TestOptionalMembersAreNullable(t *testing.T) {
	type Change struct {
		Severity string  `json:"severity" jsonschema:"enum=error,enum=warning"`
		Category string  `json:"category,omitempty"`
		Level    string  `json:"level,omitempty" jsonschema:"enum=low,enum=high"`
		Score    *int    `json:"score"`
		Note     *string `json:"note" jsonschema:"required"`
	}

	schema, err := Generate[Change]()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded struct {
		Properties map[string]struct {
			Type any   `json:"type"`
			Enum []any `json:"enum"`
		} `json:"properties"`
	}
	if err := json.Unmarshal([]byte(schema.String()), &decoded); err != nil {
		t.Fatalf("Expected valid JSON, got error: %v", err)
	}

	for name, want := range map[string]any{
		"severity": "string",
		"note":     "string",
		"category": []any{"string", "null"},
		"score":    []any{"integer", "null"},
	} {
		if got := decoded.Properties[name].Type; !reflect.DeepEqual(got, want) {
			t.Errorf("Property %s: expected type %v, got %v", name, want, got)
		}
	}
	if got := decoded.Properties["level"].Enum; len(got) != 3 || got[2] != nil {
		t.Errorf("Expected null appended to optional enum, got %v", got)
	}
	if got := decoded.Properties["severity"].Enum; len(got) != 2 {
		t.Errorf("Expected required enum unchanged, got %v", got)
	}
}
