// Package jsonschema derives JSON Schema documents from Go types using
// reflection.
//
// It supports structs, primitives, slices, maps, pointers and recursive
// types. Recursive references are emitted as $ref into $defs; other nested
// structs are inlined with their own required lists, so a schema of a data
// model can be handed directly to a validator.
//
// The entry point is [Generate], which works from a type parameter alone and
// needs no runtime value.
package jsonschema
