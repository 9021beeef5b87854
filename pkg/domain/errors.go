package domain

import (
	"errors"
	"fmt"
)

// ErrConversionNotFound is returned when a conversion ID cannot be found in the store.
var ErrConversionNotFound = errors.New("conversion not found")

// ErrUnknownState is returned when a state is referenced but not declared.
var ErrUnknownState = errors.New("unknown state")

// ErrUnknownSymbol is returned when a transition label is neither ε nor part of the alphabet.
var ErrUnknownSymbol = errors.New("unknown symbol")

// ContractError signals a violated engine precondition.
// The engine panics with it; it is a programming error, not a runtime condition.
type ContractError struct {
	Op     string
	Reason string
	Err    error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: contract violation: %s", e.Op, e.Reason)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}
