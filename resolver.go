package graphql

import (
	"context"

	"github.com/kestrelgraph/graphql/language/ast"
	"github.com/kestrelgraph/graphql/value"
)

// Resolvable is an alternative to the Field.Resolve closure style: a
// host type that implements Resolvable handles its own field dispatch
// directly, rather than relying on a per-field FieldResolveFn attached
// to an Object's Fields config. The executor tries Resolvable first
// when a resolver's Source implements it; every other Source value
// falls through to the existing FieldResolveFn/defaultResolveFn path,
// so Resolvable is purely additive.
type Resolvable interface {
	// TypeName is the GraphQL object type name this value resolves as,
	// used the same way Object.Name() identifies a config-driven type.
	TypeName() string

	// Meta describes this type's shape to the schema. registry is the
	// schema the type is being registered into, letting a Resolvable
	// type reference sibling types already known to it.
	Meta(registry *Schema) *ObjectMeta

	// ResolveField resolves a single field of this value by name. sel
	// is the field's own selection set (nil for scalar/leaf fields),
	// handed through for Resolvable types that need to inspect what a
	// caller asked for before producing a value (e.g. to avoid doing
	// work for sub-fields that weren't selected).
	ResolveField(ex *Executor, fieldName string, args map[string]value.InputValue, sel *ast.SelectionSet) FieldResult
}

// FieldResult is a Resolvable's answer for a single field, standing in
// for the (interface{}, error) pair a FieldResolveFn returns.
type FieldResult struct {
	// Value is the resolved field value, in the same raw shape a
	// FieldResolveFn would have returned (passed to completeValue for
	// the usual list/object/leaf completion and null propagation).
	Value any

	// Err, if non-nil, is reported as a field error at this field's
	// path exactly as a FieldResolveFn's error return would be.
	Err error

	// NewContext, if set, replaces ctx for the remainder of this
	// field's sub-tree (its own completion and any nested resolves),
	// letting a Resolvable rebind request-scoped values partway
	// through execution.
	NewContext context.Context
}

// ObjectMeta is what a Resolvable's Meta returns: enough information
// for the schema to treat the host type as a first-class Object
// without it having been built through NewObject/ObjectConfig.
type ObjectMeta struct {
	Name        string
	Description string

	// Fields lists the field names this type answers in ResolveField,
	// each paired with its declared GraphQL type. The schema uses this
	// to answer type-lookup and validation questions (e.g. "does field
	// X exist on type Y") the same way it would for a config-driven
	// Object's Fields map.
	Fields map[string]Output
}

// Executor is the handle a Resolvable's ResolveField receives instead
// of direct access to the executor's internal recursion state: enough
// to read the schema being executed against and the response path the
// field being resolved sits at, without exposing collectFields/
// completeValue internals to host code.
type Executor struct {
	schema *Schema
	path   []string
}

// Schema returns the schema this execution is running against.
func (e *Executor) Schema() *Schema {
	return e.schema
}

// Path returns the response-key path of the field currently being
// resolved, the same path the executor attaches to any error raised
// for this field.
func (e *Executor) Path() []string {
	return append([]string(nil), e.path...)
}
