package ast

import "github.com/kestrelgraph/graphql/language/source"

// Location records the byte offsets of a node within its source document.
type Location struct {
	Start  int
	End    int
	Source *source.Source
}

// Node is implemented by every AST node produced by the parser.
type Node interface {
	GetLoc() Location
}

// Name implements Node.
type Name struct {
	Loc   Location
	Value string
}

func (n *Name) GetLoc() Location {
	return n.Loc
}

// Selection is implemented by the members of a SelectionSet: Field,
// FragmentSpread and InlineFragment.
type Selection interface {
	GetSelectionSet() *SelectionSet
	GetLoc() Location
}

var _ Selection = (*Field)(nil)
var _ Selection = (*FragmentSpread)(nil)
var _ Selection = (*InlineFragment)(nil)

// SelectionSet implements Node.
type SelectionSet struct {
	Loc        Location
	Selections []Selection
}

func (s *SelectionSet) GetLoc() Location {
	return s.Loc
}

// Field implements Node, Selection.
type Field struct {
	Loc          Location
	Alias        *Name
	Name         *Name
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet
}

func (f *Field) GetLoc() Location {
	return f.Loc
}

func (f *Field) GetSelectionSet() *SelectionSet {
	return f.SelectionSet
}

// Argument implements Node.
type Argument struct {
	Loc   Location
	Name  *Name
	Value Value
}

func (a *Argument) GetLoc() Location {
	return a.Loc
}

// FragmentSpread implements Node, Selection.
type FragmentSpread struct {
	Loc        Location
	Name       *Name
	Directives []*Directive
}

func (fs *FragmentSpread) GetLoc() Location {
	return fs.Loc
}

func (fs *FragmentSpread) GetSelectionSet() *SelectionSet {
	return nil
}

// InlineFragment implements Node, Selection.
type InlineFragment struct {
	Loc           Location
	TypeCondition *Named
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (f *InlineFragment) GetLoc() Location {
	return f.Loc
}

func (f *InlineFragment) GetSelectionSet() *SelectionSet {
	return f.SelectionSet
}

// Directive implements Node.
type Directive struct {
	Loc       Location
	Name      *Name
	Arguments []*Argument
}

func (d *Directive) GetLoc() Location {
	return d.Loc
}

// Type is implemented by the type-reference nodes that appear in variable
// definitions and input-value definitions: Named, List and NonNull.
type Type interface {
	GetLoc() Location
	String() string
}

var _ Type = (*Named)(nil)
var _ Type = (*List)(nil)
var _ Type = (*NonNull)(nil)

// Named implements Node, Type. It is a bare type reference by name, e.g. "Int".
type Named struct {
	Loc  Location
	Name *Name
}

func (n *Named) GetLoc() Location {
	return n.Loc
}

func (n *Named) String() string {
	if n.Name != nil {
		return n.Name.Value
	}
	return ""
}

// List implements Node, Type. It wraps another type reference, e.g. "[Int]".
type List struct {
	Loc  Location
	Type Type
}

func (l *List) GetLoc() Location {
	return l.Loc
}

func (l *List) String() string {
	if l.Type != nil {
		return "[" + l.Type.String() + "]"
	}
	return "[]"
}

// NonNull implements Node, Type. It wraps another type reference, e.g. "Int!".
type NonNull struct {
	Loc  Location
	Type Type
}

func (n *NonNull) GetLoc() Location {
	return n.Loc
}

func (n *NonNull) String() string {
	if n.Type != nil {
		return n.Type.String() + "!"
	}
	return "!"
}
