package graphql

import (
	"github.com/kestrelgraph/graphql/gqlerrors"
)

// type Schema any

type Result struct {
	Data   any                        `json:"data"`
	Errors []gqlerrors.FormattedError `json:"errors,omitempty"`
	// RequestID identifies this execution for log correlation between the
	// executor, any attached Tracer, and host-side request logging.
	RequestID string `json:"-"`
}

func (r *Result) HasErrors() bool {
	return (len(r.Errors) > 0)
}
