package gqlerrors

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/kestrelgraph/graphql/language/location"
)

type FormattedError struct {
	Message     string                    `json:"message"`
	Type        ErrorType                 `json:"type,omitempty"`
	UserMessage string                    `json:"userMessage,omitempty"`
	Locations   []location.SourceLocation `json:"locations"`
	// Path is the response-key path to the field this error originated
	// from, field aliases/names only — list indices are never included.
	Path          []string `json:"path,omitempty"`
	StackTrace    string   `json:"-"`
	OriginalError error    `json:"-"`
}

// WithPath returns a copy of g with Path set, used by the executor to
// attach the current response-key path once a field error is caught.
func (g FormattedError) WithPath(path []string) FormattedError {
	g.Path = append([]string(nil), path...)
	return g
}

// FormattedErrors sorts errors by message, then by the line and column of
// their first location.
type FormattedErrors []FormattedError

func (errs FormattedErrors) Len() int      { return len(errs) }
func (errs FormattedErrors) Swap(i, j int) { errs[i], errs[j] = errs[j], errs[i] }
func (errs FormattedErrors) Less(i, j int) bool {
	if errs[i].Message != errs[j].Message {
		return errs[i].Message < errs[j].Message
	}
	a, b := errs[i].Locations, errs[j].Locations
	if len(a) == 0 || len(b) == 0 {
		return len(a) < len(b)
	}
	return a[0].Line < b[0].Line || a[0].Line == b[0].Line && a[0].Column < b[0].Column
}

func (g FormattedError) Error() string {
	return g.Message
}

// RuleError is the error shape validation rules report: a message plus
// the source locations that produced it. It is a FormattedError under
// the name the validator's rules use.
type RuleError = FormattedError

func NewFormattedError(message string) FormattedError {
	err := errors.New(message)
	return FormatError(err)
}

func FormatError(err error) FormattedError {
	switch err := err.(type) {
	case runtime.Error:
		return FormattedError{
			Message:       err.Error(),
			Type:          ErrorTypeInternal,
			StackTrace:    stackTrace(),
			OriginalError: err,
		}
	case FormattedError:
		return err
	case *FormattedError:
		return *err
	case *Error:
		return FormattedError{
			Type:          err.Type,
			Message:       err.Error(),
			Locations:     err.Locations,
			Path:          err.Path,
			OriginalError: err.OriginalError,
		}
	case Error:
		return FormattedError{
			Type:          err.Type,
			Message:       err.Error(),
			Locations:     err.Locations,
			Path:          err.Path,
			OriginalError: err.OriginalError,
		}
	default:
		return FormattedError{
			Type:          ErrorTypeInternal,
			Message:       err.Error(),
			Locations:     []location.SourceLocation{},
			OriginalError: err,
		}
	}
}

func FormatPanic(r interface{}) FormattedError {
	if e, ok := r.(FormattedError); ok {
		return e
	}
	return FormattedError{
		Message:    fmt.Sprintf("panic %v", r),
		Type:       ErrorTypeInternal,
		StackTrace: stackTrace(),
	}
}

func FormatErrors(errs ...error) []FormattedError {
	formattedErrors := []FormattedError{}
	for _, err := range errs {
		formattedErrors = append(formattedErrors, FormatError(err))
	}
	return formattedErrors
}

func stackTrace() string {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
