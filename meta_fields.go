package graphql

import "context"

// TypeNameMetaFieldDef backs the __typename meta field available on every
// composite type, used by clients (and by the executor's own abstract-type
// dispatch) to discover the concrete runtime type of a selection.
var TypeNameMetaFieldDef = &FieldDefinition{
	Name:        "__typename",
	Type:        NewNonNull(String),
	Description: "The name of the current Object type at runtime.",
	Resolve: func(ctx context.Context, p ResolveParams) (any, error) {
		return p.Info.ParentType.Name(), nil
	},
}

// SchemaMetaFieldDef and TypeMetaFieldDef reserve the __schema/__type root
// field names so the registry and field-lookup machinery recognize them as
// meta fields, without implementing the introspection type system itself:
// schema introspection is outside scope. Neither has a Resolve function:
// on the query type they pass validation and are resolved by the default
// resolver against the root value, like any other field without one.
var SchemaMetaFieldDef = &FieldDefinition{
	Name:        "__schema",
	Type:        NewNonNull(String),
	Description: "Schema introspection is not implemented.",
}

var TypeMetaFieldDef = &FieldDefinition{
	Name:        "__type",
	Type:        String,
	Description: "Type introspection is not implemented.",
	Args: []*Argument{
		{
			PrivateName: "name",
			Type:        NewNonNull(String),
		},
	},
}
