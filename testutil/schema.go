package testutil

import (
	"context"

	"github.com/kestrelgraph/graphql"
)

// This is the small cross-type schema used across the validator's test
// suite: a QueryRoot exposing a catOrDog union field so rules that deal
// with fragment type conditions and field merging have something to
// exercise beyond a single concrete type.

var testCatType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Cat",
	Fields: graphql.Fields{
		"name":     &graphql.Field{Type: graphql.String},
		"nickname": &graphql.Field{Type: graphql.String},
		"meows":    &graphql.Field{Type: graphql.Boolean},
		"furColor": &graphql.Field{Type: graphql.String},
	},
})

var testDogType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Dog",
	Fields: graphql.Fields{
		"name":           &graphql.Field{Type: graphql.String},
		"nickname":       &graphql.Field{Type: graphql.String},
		"barks":          &graphql.Field{Type: graphql.Boolean},
		"isHousetrained": &graphql.Field{Type: graphql.Boolean},
	},
})

var testCatOrDogUnion = graphql.NewUnion(graphql.UnionConfig{
	Name:  "CatOrDog",
	Types: []*graphql.Object{testCatType, testDogType},
	ResolveType: func(ctx context.Context, p graphql.ResolveTypeParams) *graphql.Object {
		switch p.Value.(type) {
		case *testCat:
			return testCatType
		case *testDog:
			return testDogType
		}
		return nil
	},
})

type testCat struct {
	Name     string
	FurColor string
}

type testDog struct {
	Name           string
	IsHousetrained bool
}

var testQueryRoot = graphql.NewObject(graphql.ObjectConfig{
	Name: "QueryRoot",
	Fields: graphql.Fields{
		"catOrDog": &graphql.Field{
			Type: testCatOrDogUnion,
			Resolve: func(ctx context.Context, p graphql.ResolveParams) (any, error) {
				return &testCat{Name: "Garfield", FurColor: "orange"}, nil
			},
		},
	},
})

// TestSchema is the minimal schema the validator's rule tests run
// against when they need a union/fragment-bearing type rather than the
// Star Wars schema's interface-only shape.
var TestSchema *graphql.Schema

func init() {
	s, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: testQueryRoot,
	})
	if err != nil {
		panic(err)
	}
	TestSchema = &s
}
