/*
Package engine implements ε-elimination for nondeterministic finite automata.

The pipeline runs left to right over an immutable domain.Automaton:

	HasEpsilon -> AllEpsilonClosures -> RebuildTransitions / RebuildFinals

EliminateEpsilon bundles the last two steps. Every function is pure and safe
for concurrent use on independent automata.

The engine assumes a validated automaton (see package validation). Asking for
the closure of an undeclared state is a programming error and panics with a
*domain.ContractError instead of returning silently wrong output.
*/
package engine
