package graphql

import (
	"fmt"

	"github.com/google/uuid"
)

// SchemaConfig binds a query root type and optional mutation/subscription
// root types; NewSchema walks these to build the type registry.
type SchemaConfig struct {
	Query        *Object
	Mutation     *Object
	Subscription *Object
	Directives   []*Directive
	Types        []Type // additional types to register that aren't reachable by walking from the roots
}

// Schema is the reified, read-only type registry produced from a
// SchemaConfig. It is safe to share across goroutines once constructed.
type Schema struct {
	id           string
	queryType    *Object
	mutationType *Object
	subscrType   *Object
	directives   []*Directive
	typeMap      map[string]Type
	possible     map[string]map[string]*Object
}

// NewSchema registers the query/mutation/subscription root types and
// recursively registers every type reachable from their fields and
// argument types. A type already registered under a given name is
// assumed identical to the first registration (first-wins).
func NewSchema(config SchemaConfig) (Schema, error) {
	if config.Query == nil {
		return Schema{}, fmt.Errorf("schema: a query type is required")
	}
	if config.Query.Error() != nil {
		return Schema{}, config.Query.Error()
	}

	directives := config.Directives
	if directives == nil {
		directives = []*Directive{IncludeDirective, SkipDirective}
	}

	s := &Schema{
		id:           uuid.NewString(),
		queryType:    config.Query,
		mutationType: config.Mutation,
		subscrType:   config.Subscription,
		directives:   directives,
		typeMap:      make(map[string]Type),
		possible:     make(map[string]map[string]*Object),
	}

	roots := []Type{config.Query}
	if config.Mutation != nil {
		roots = append(roots, config.Mutation)
	}
	if config.Subscription != nil {
		roots = append(roots, config.Subscription)
	}
	roots = append(roots, config.Types...)
	roots = append(roots, TypeNameMetaFieldDef.Type, SchemaMetaFieldDef.Type, TypeMetaFieldDef.Type)

	for _, t := range roots {
		if err := s.registerType(t); err != nil {
			return Schema{}, err
		}
	}

	for name, t := range s.typeMap {
		obj, ok := t.(*Object)
		if !ok {
			continue
		}
		for _, iface := range obj.Interfaces() {
			if s.possible[iface.Name()] == nil {
				s.possible[iface.Name()] = make(map[string]*Object)
			}
			s.possible[iface.Name()][name] = obj
		}
	}
	for name, t := range s.typeMap {
		union, ok := t.(*Union)
		if !ok {
			continue
		}
		if s.possible[name] == nil {
			s.possible[name] = make(map[string]*Object)
		}
		for _, member := range union.Types() {
			s.possible[name][member.Name()] = member
		}
	}

	return *s, nil
}

// registerType walks t and everything it references (field return
// types, argument types, interfaces, union members, list/non-null
// wrappers) and adds each Named type to the registry exactly once.
func (s *Schema) registerType(t Type) error {
	switch t := t.(type) {
	case nil:
		return nil
	case *List:
		return s.registerType(t.OfType)
	case *NonNull:
		return s.registerType(t.OfType)
	}

	named, ok := t.(Named)
	if !ok {
		return nil
	}
	name := named.Name()
	if name == "" {
		return nil
	}
	if existing, ok := s.typeMap[name]; ok {
		_ = existing // first-wins: already registered
		return nil
	}
	s.typeMap[name] = t

	switch t := t.(type) {
	case *Object:
		if t.Error() != nil {
			return t.Error()
		}
		for _, f := range t.Fields() {
			if err := s.registerType(f.Type); err != nil {
				return err
			}
			for _, a := range f.Args {
				if err := s.registerType(a.Type); err != nil {
					return err
				}
			}
		}
		for _, iface := range t.Interfaces() {
			if err := s.registerType(iface); err != nil {
				return err
			}
		}
	case *Interface:
		for _, f := range t.Fields() {
			if err := s.registerType(f.Type); err != nil {
				return err
			}
			for _, a := range f.Args {
				if err := s.registerType(a.Type); err != nil {
					return err
				}
			}
		}
	case *Union:
		for _, member := range t.Types() {
			if err := s.registerType(member); err != nil {
				return err
			}
		}
	case *InputObject:
		for _, f := range t.Fields() {
			if err := s.registerType(f.Type); err != nil {
				return err
			}
		}
	}
	return nil
}

// ID is a stable identifier for this Schema instance, useful for log
// correlation when multiple schemas are hot-reloaded in a host process.
func (s *Schema) ID() string { return s.id }

func (s *Schema) QueryType() *Object        { return s.queryType }
func (s *Schema) MutationType() *Object     { return s.mutationType }
func (s *Schema) SubscriptionType() *Object { return s.subscrType }
func (s *Schema) Directives() []*Directive  { return s.directives }

func (s *Schema) Directive(name string) *Directive {
	for _, d := range s.directives {
		if d.Name == name {
			return d
		}
	}
	return nil
}

func (s *Schema) Type(name string) Type {
	return s.typeMap[name]
}

func (s *Schema) TypeMap() map[string]Type {
	return s.typeMap
}

// PossibleTypes returns the concrete Object types that can satisfy the
// given abstract (Interface or Union) type.
func (s *Schema) PossibleTypes(abstractType Abstract) []*Object {
	named, ok := abstractType.(Named)
	if !ok {
		return nil
	}
	m := s.possible[named.Name()]
	out := make([]*Object, 0, len(m))
	for _, obj := range m {
		out = append(out, obj)
	}
	return out
}

// IsPossibleType reports whether possibleType can satisfy abstractType.
func (s *Schema) IsPossibleType(abstractType Abstract, possibleType *Object) bool {
	named, ok := abstractType.(Named)
	if !ok || possibleType == nil {
		return false
	}
	m := s.possible[named.Name()]
	if m == nil {
		return false
	}
	_, ok = m[possibleType.Name()]
	return ok
}
