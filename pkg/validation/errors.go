package validation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyStates    = errors.New("state list cannot be empty")
	ErrEmptyAlphabet  = errors.New("alphabet cannot be empty")
	ErrReservedSymbol = errors.New("symbol is reserved for epsilon")
	ErrUnknownStart   = errors.New("start state is not in state list")
	ErrUnknownFinal   = errors.New("final states are not in state list")
	ErrNoFinalStates  = errors.New("no final states entered")
	ErrEmptyLine      = errors.New("empty input")
	ErrFormat         = errors.New("format error, use: state symbol state")
)

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Key    string // Field name
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
	Err    error  // Sentinel classifying the failure, if any
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %v)", e.Key, e.Reason, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}

// IsConfirmable reports whether err describes valid but unusual input that
// the user should confirm rather than correct.
func IsConfirmable(err error) bool {
	return errors.Is(err, ErrNoFinalStates)
}
