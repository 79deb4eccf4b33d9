package schema

import (
	"errors"
	"fmt"

	"github.com/aretw0/structdict/internal/repr"
)

// DefinitionError represents a single invalid field declaration.
type DefinitionError struct {
	Key    any    // Declared key
	Reason string // Human-readable reason for failure
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("field %s: %s", repr.Value(e.Key), e.Reason)
}

// AggregateError represents multiple definition failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d schema errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// DefinitionErrors returns all definition errors if err wraps an AggregateError.
// Otherwise returns nil.
func DefinitionErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
