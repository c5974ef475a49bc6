// Package visitor implements a depth-first walk over a parsed document,
// calling Enter/Leave callbacks as each node is visited. It follows the
// same enter/leave/action protocol as the reference GraphQL.js visitor.
package visitor

import (
	"github.com/kestrelgraph/graphql/language/ast"
)

const (
	// ActionNoChange continues the walk normally.
	ActionNoChange = ""
	// ActionSkip skips the children of the current node.
	ActionSkip = "skip"
	// ActionBreak stops the walk entirely.
	ActionBreak = "break"
)

// VisitFuncParams carries the node under visitation plus its immediate
// ancestry context.
type VisitFuncParams struct {
	Node   ast.Node
	Key    any
	Parent ast.Node
	Path   []any
	// Ancestors holds the nodes of Path, outermost first; its last
	// element is Parent.
	Ancestors []ast.Node
}

// VisitFunc is the Enter/Leave callback signature: given the node under
// visitation, it returns an action (ActionNoChange/ActionSkip/ActionBreak)
// and an optional replacement node (unused by this package's callers).
type VisitFunc func(p VisitFuncParams) (string, any)

// VisitorOptions holds the Enter/Leave callbacks invoked for every node.
// Either may be nil.
type VisitorOptions struct {
	Enter VisitFunc
	Leave VisitFunc
}

type stopWalk struct{}

// Visit walks root depth-first, invoking options.Enter before descending
// into a node's children and options.Leave after. Returning ActionSkip
// from Enter skips that node's children; returning ActionBreak from
// either stops the walk immediately.
func Visit(root ast.Node, options *VisitorOptions) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(stopWalk); ok {
				return
			}
			panic(r)
		}
	}()
	v := &walker{options: options}
	v.visit(root, nil, nil, nil)
	return nil
}

type walker struct {
	options *VisitorOptions
}

func (w *walker) visit(node ast.Node, key any, parent ast.Node, path []any) {
	if node == nil {
		return
	}
	ancestors := make([]ast.Node, 0, len(path))
	for _, a := range path {
		if n, ok := a.(ast.Node); ok {
			ancestors = append(ancestors, n)
		}
	}
	if w.options != nil && w.options.Enter != nil {
		action, _ := w.options.Enter(VisitFuncParams{Node: node, Key: key, Parent: parent, Path: path, Ancestors: ancestors})
		switch action {
		case ActionBreak:
			panic(stopWalk{})
		case ActionSkip:
			return
		}
	}

	w.visitChildren(node, path)

	if w.options != nil && w.options.Leave != nil {
		action, _ := w.options.Leave(VisitFuncParams{Node: node, Key: key, Parent: parent, Path: path, Ancestors: ancestors})
		if action == ActionBreak {
			panic(stopWalk{})
		}
	}
}

func (w *walker) visitChildren(node ast.Node, path []any) {
	childPath := append(append([]any{}, path...), node)
	switch n := node.(type) {
	case *ast.Document:
		for i, d := range n.Definitions {
			w.visit(d, i, node, childPath)
		}
	case *ast.OperationDefinition:
		w.visitName(n.Name, node, childPath)
		for i, vd := range n.VariableDefinitions {
			w.visit(vd, i, node, childPath)
		}
		for i, d := range n.Directives {
			w.visit(d, i, node, childPath)
		}
		w.visitSelectionSet(n.SelectionSet, node, childPath)
	case *ast.VariableDefinition:
		w.visit(n.Variable, "Variable", node, childPath)
		w.visitType(n.Type, node, childPath)
		w.visit(n.DefaultValue, "DefaultValue", node, childPath)
	case *ast.SelectionSet:
		for i, s := range n.Selections {
			w.visit(s, i, node, childPath)
		}
	case *ast.Field:
		w.visitName(n.Alias, node, childPath)
		w.visitName(n.Name, node, childPath)
		for i, a := range n.Arguments {
			w.visit(a, i, node, childPath)
		}
		for i, d := range n.Directives {
			w.visit(d, i, node, childPath)
		}
		w.visitSelectionSet(n.SelectionSet, node, childPath)
	case *ast.Argument:
		w.visitName(n.Name, node, childPath)
		w.visit(n.Value, "Value", node, childPath)
	case *ast.FragmentSpread:
		w.visitName(n.Name, node, childPath)
		for i, d := range n.Directives {
			w.visit(d, i, node, childPath)
		}
	case *ast.InlineFragment:
		if n.TypeCondition != nil {
			w.visit(n.TypeCondition, "TypeCondition", node, childPath)
		}
		for i, d := range n.Directives {
			w.visit(d, i, node, childPath)
		}
		w.visitSelectionSet(n.SelectionSet, node, childPath)
	case *ast.FragmentDefinition:
		w.visitName(n.Name, node, childPath)
		if n.TypeCondition != nil {
			w.visit(n.TypeCondition, "TypeCondition", node, childPath)
		}
		for i, d := range n.Directives {
			w.visit(d, i, node, childPath)
		}
		w.visitSelectionSet(n.SelectionSet, node, childPath)
	case *ast.Variable:
		w.visitName(n.Name, node, childPath)
	case *ast.ListValue:
		for i, v := range n.Values {
			w.visit(v, i, node, childPath)
		}
	case *ast.ObjectValue:
		for i, f := range n.Fields {
			w.visit(f, i, node, childPath)
		}
	case *ast.ObjectField:
		w.visitName(n.Name, node, childPath)
		w.visit(n.Value, "Value", node, childPath)
	case *ast.Directive:
		w.visitName(n.Name, node, childPath)
		for i, a := range n.Arguments {
			w.visit(a, i, node, childPath)
		}
	case *ast.Named:
		w.visitName(n.Name, node, childPath)
	case *ast.List:
		w.visitType(n.Type, node, childPath)
	case *ast.NonNull:
		w.visitType(n.Type, node, childPath)
	}
}

func (w *walker) visitName(n *ast.Name, parent ast.Node, path []any) {
	if n == nil {
		return
	}
	w.visit(n, "Name", parent, path)
}

func (w *walker) visitSelectionSet(s *ast.SelectionSet, parent ast.Node, path []any) {
	if s == nil {
		return
	}
	w.visit(s, "SelectionSet", parent, path)
}

func (w *walker) visitType(t ast.Type, parent ast.Node, path []any) {
	if t == nil {
		return
	}
	w.visit(t, "Type", parent, path)
}
