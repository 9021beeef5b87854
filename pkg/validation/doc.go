// Package validation checks automaton input at the boundary of the engine.
//
// It offers one parse function per piece of input (states, alphabet, start
// state, final states, a single transition line) plus Validate for a fully
// assembled domain.Automaton. Every function returns a value or an error and
// never loops or prompts: retrying is left to the caller, whether that is an
// interactive console, a file loader or an HTTP handler.
//
// Recoverable problems are reported as sentinel errors:
//
//	states, warnings, err := validation.ParseStates(line)
//	if errors.Is(err, validation.ErrEmptyStates) {
//	    // ask again
//	}
//
// Degenerate but valid input (no final states) is reported with
// ErrNoFinalStates; IsConfirmable tells the caller to ask the user instead of
// rejecting it.
//
// Epsilon aliases ("e", "eps", "epsilon", "ε") are normalised here, once, to
// domain.Epsilon.
package validation
