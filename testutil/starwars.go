package testutil

import (
	"context"

	"github.com/kestrelgraph/graphql"
)

// This is the canonical "Star Wars" fixture used across the GraphQL
// ecosystem's reference implementations: a small schema over Human and
// Droid characters, their friends, and the movie episodes they appear
// in, backed by an in-memory data set instead of a real datastore.

type character struct {
	id              string
	name            string
	friends         []string
	appearsIn       []int
	primaryFunction string // droid-only
	homePlanet      string // human-only
}

var (
	luke = &character{id: "1000", name: "Luke Skywalker", friends: []string{"1002", "1003", "2000", "2001"}, appearsIn: []int{4, 5, 6}, homePlanet: "Tatooine"}
	vader = &character{id: "1001", name: "Darth Vader", friends: []string{"1004"}, appearsIn: []int{4, 5, 6}, homePlanet: "Tatooine"}
	han   = &character{id: "1002", name: "Han Solo", friends: []string{"1000", "1003", "2001"}, appearsIn: []int{4, 5, 6}}
	leia  = &character{id: "1003", name: "Leia Organa", friends: []string{"1000", "1002", "2000", "2001"}, appearsIn: []int{4, 5, 6}, homePlanet: "Alderaan"}
	tarkin = &character{id: "1004", name: "Wilhuff Tarkin", friends: []string{"1001"}, appearsIn: []int{4}}
	threepio = &character{id: "2000", name: "C-3PO", friends: []string{"1000", "1002", "1003", "2001"}, appearsIn: []int{4, 5, 6}, primaryFunction: "Protocol"}
	artoo    = &character{id: "2001", name: "R2-D2", friends: []string{"1000", "1002", "1003"}, appearsIn: []int{4, 5, 6}, primaryFunction: "Astromech"}
)

var humanData = map[string]*character{luke.id: luke, vader.id: vader, han.id: han, leia.id: leia, tarkin.id: tarkin}
var droidData = map[string]*character{threepio.id: threepio, artoo.id: artoo}

func getCharacter(id string) *character {
	if c, ok := humanData[id]; ok {
		return c
	}
	return droidData[id]
}

func getFriends(c *character) []*character {
	out := make([]*character, 0, len(c.friends))
	for _, id := range c.friends {
		out = append(out, getCharacter(id))
	}
	return out
}

func getHero(episode int) *character {
	if episode == 5 {
		return luke
	}
	return artoo
}

// EpisodeEnum maps the three original-trilogy episodes to their
// graphql-js-compatible integer codes.
var EpisodeEnum = graphql.NewEnum(graphql.EnumConfig{
	Name:        "Episode",
	Description: "One of the films in the Star Wars Trilogy",
	Values: graphql.EnumValueConfigMap{
		"NEWHOPE": &graphql.EnumValueConfig{Value: 4, Description: "Released in 1977."},
		"EMPIRE":  &graphql.EnumValueConfig{Value: 5, Description: "Released in 1980."},
		"JEDI":    &graphql.EnumValueConfig{Value: 6, Description: "Released in 1983."},
	},
})

// CharacterInterface is implemented by both Human and Droid.
var CharacterInterface = graphql.NewInterface(graphql.InterfaceConfig{
	Name:        "Character",
	Description: "A character in the Star Wars Trilogy",
	Fields:      graphql.Fields{},
	ResolveType: func(ctx context.Context, p graphql.ResolveTypeParams) *graphql.Object {
		if c, ok := p.Value.(*character); ok {
			if _, ok := droidData[c.id]; ok {
				return StarWarsSchema.Type("Droid").(*graphql.Object)
			}
			return StarWarsSchema.Type("Human").(*graphql.Object)
		}
		return nil
	},
})

func init() {
	CharacterInterface.AddFieldConfig("id", &graphql.Field{Type: graphql.NewNonNull(graphql.String)})
	CharacterInterface.AddFieldConfig("name", &graphql.Field{Type: graphql.String})
	CharacterInterface.AddFieldConfig("friends", &graphql.Field{Type: graphql.NewList(CharacterInterface)})
	CharacterInterface.AddFieldConfig("appearsIn", &graphql.Field{Type: graphql.NewList(EpisodeEnum)})
}

// HumanType describes a human character, adding homePlanet over the
// shared Character interface fields.
var HumanType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "Human",
	Description: "A humanoid creature in the Star Wars universe.",
	Interfaces:  []*graphql.Interface{CharacterInterface},
	Fields: graphql.Fields{
		"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"name": &graphql.Field{Type: graphql.String},
		"friends": &graphql.Field{
			Type: graphql.NewList(CharacterInterface),
			Resolve: func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				return getFriends(p.Source.(*character)), nil
			},
		},
		"appearsIn":  &graphql.Field{Type: graphql.NewList(EpisodeEnum)},
		"homePlanet": &graphql.Field{Type: graphql.String},
	},
})

// DroidType describes a droid character, adding primaryFunction over
// the shared Character interface fields.
var DroidType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "Droid",
	Description: "A mechanical creature in the Star Wars universe.",
	Interfaces:  []*graphql.Interface{CharacterInterface},
	Fields: graphql.Fields{
		"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"name": &graphql.Field{Type: graphql.String},
		"friends": &graphql.Field{
			Type: graphql.NewList(CharacterInterface),
			Resolve: func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				return getFriends(p.Source.(*character)), nil
			},
		},
		"appearsIn":       &graphql.Field{Type: graphql.NewList(EpisodeEnum)},
		"primaryFunction": &graphql.Field{Type: graphql.String},
	},
})

var queryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Query",
	Fields: graphql.Fields{
		"hero": &graphql.Field{
			Type: CharacterInterface,
			Args: graphql.FieldConfigArgument{
				"episode": &graphql.ArgumentConfig{Type: EpisodeEnum},
			},
			Resolve: func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				episode, _ := p.Args["episode"].(int)
				return getHero(episode), nil
			},
		},
		"human": &graphql.Field{
			Type: HumanType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				return humanData[p.Args["id"].(string)], nil
			},
		},
		"droid": &graphql.Field{
			Type: DroidType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				return droidData[p.Args["id"].(string)], nil
			},
		},
	},
})

// StarWarsSchema is the fully-built schema over Character/Human/Droid,
// shared by the validator and executor test suites.
var StarWarsSchema graphql.Schema

func init() {
	s, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
	if err != nil {
		panic(err)
	}
	StarWarsSchema = s
}
