// Package location converts absolute byte offsets into source into
// human-facing line/column positions, for use in error reporting.
package location

import "github.com/kestrelgraph/graphql/language/source"

// SourceLocation is a 1-indexed line/column pair as reported to clients.
type SourceLocation struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// GetLocation returns the line/column position of offset pos within s.
func GetLocation(s *source.Source, pos int) SourceLocation {
	if s == nil {
		return SourceLocation{}
	}
	p := s.Position(pos)
	return SourceLocation{
		Line:   p.Line,
		Column: p.Column,
	}
}
