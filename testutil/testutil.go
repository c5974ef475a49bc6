// Package testutil provides small helpers shared by the package's test
// suites: structural subset comparisons and readable diffs on failure.
package testutil

import (
	"context"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/kestrelgraph/graphql"
	"github.com/kestrelgraph/graphql/language/ast"
	"github.com/kestrelgraph/graphql/language/parser"
	"github.com/kestrelgraph/graphql/language/source"
	"github.com/kestrelgraph/graphql/value"
	"github.com/kylelemons/godebug/pretty"
)

// Diff renders a human-readable diff between two values, for use in
// test failure messages.
func Diff(a, b any) string {
	return pretty.Compare(a, b)
}

// DumpResult renders actual's full structure, including unexported
// fields such as *value.Object's internal key order, for debugging a
// failed comparison in more depth than Diff's summary gives.
func DumpResult(actual *graphql.Result) string {
	return spew.Sdump(actual)
}

// TestParse parses query, failing the test immediately on a syntax error.
func TestParse(t *testing.T, query string) *ast.Document {
	astDoc, err := parser.Parse(parser.ParseParams{Source: source.New("GraphQL request", query)})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
		return nil
	}
	return astDoc
}

// TestExecute runs p through the executor, failing the test immediately
// if execution panics past the executor's own recovery.
func TestExecute(t *testing.T, ctx context.Context, p graphql.ExecuteParams) *graphql.Result {
	result := graphql.Execute(ctx, p)
	if result == nil {
		t.Fatalf("execute returned nil result")
	}
	return result
}

// EqualErrorMessage reports whether expected and actual have the same
// error message at index i, ignoring the unexported/non-comparable
// fields (stack trace, wrapped original error) that differ between a
// hand-written fixture and a caught runtime error.
func EqualErrorMessage(expected, actual *graphql.Result, i int) bool {
	if i >= len(expected.Errors) || i >= len(actual.Errors) {
		return false
	}
	return expected.Errors[i].Message == actual.Errors[i].Message
}

// EqualResult reports whether actual's response (held internally as an
// ordered value.Value) matches expected, which is typically written as
// a plain map[string]any/[]any literal for readability in test fixtures.
func EqualResult(expected, actual *graphql.Result) bool {
	if expected == nil || actual == nil {
		return expected == actual
	}
	return reflect.DeepEqual(expected.Data, value.ToGo(actual.Data)) &&
		reflect.DeepEqual(expected.Errors, actual.Errors)
}

// ContainSubset reports whether every key/value pair in sub is present in
// super, recursing into nested maps and slices.
func ContainSubset(super, sub map[string]any) bool {
	for k, subVal := range sub {
		superVal, ok := super[k]
		if !ok {
			return false
		}
		if !valuesMatch(superVal, subVal) {
			return false
		}
	}
	return true
}

// ContainSubsetSlice reports whether every element of sub matches some
// element of super, in order-independent fashion, recursing into nested
// slices and maps.
func ContainSubsetSlice(super, sub []any) bool {
	for _, subVal := range sub {
		found := false
		for _, superVal := range super {
			if valuesMatch(superVal, subVal) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func valuesMatch(superVal, subVal any) bool {
	switch sv := subVal.(type) {
	case map[string]any:
		superMap, ok := superVal.(map[string]any)
		if !ok {
			return false
		}
		return ContainSubset(superMap, sv)
	case []any:
		superSlice, ok := superVal.([]any)
		if !ok {
			return false
		}
		return ContainSubsetSlice(superSlice, sv)
	default:
		return reflect.DeepEqual(superVal, subVal)
	}
}
