package engine

import (
	"fmt"
	"slices"
	"sort"

	"github.com/aretw0/enfa/pkg/domain"
)

// RebuildTransitions derives the ε-free transition mapping:
//
//	δ'(s, a) = ⋃ { closure(t) : c ∈ closure(s), t ∈ δ(c, a) }
//
// Every (state, symbol) pair gets an entry; a pair with no targets maps to an
// empty, non-nil set.
func RebuildTransitions(a domain.Automaton, closures domain.Closures) domain.Transitions {
	out := make(domain.Transitions, len(a.States))
	for _, state := range a.States {
		bySymbol := make(map[string][]string, len(a.Symbols))
		for _, symbol := range a.Symbols {
			reachable := map[string]bool{}
			for _, c := range closureOf(closures, state) {
				for _, target := range a.Transitions[c][symbol] {
					for _, s := range closureOf(closures, target) {
						reachable[s] = true
					}
				}
			}
			bySymbol[symbol] = sortedSet(reachable)
		}
		out[state] = bySymbol
	}
	return out
}

// RebuildFinals returns, sorted, every state whose closure reaches an original
// final state. An automaton without finals yields an empty result.
func RebuildFinals(a domain.Automaton, closures domain.Closures) []string {
	finals := []string{}
	for _, state := range a.States {
		if slices.ContainsFunc(closureOf(closures, state), a.IsFinal) {
			finals = append(finals, state)
		}
	}
	sort.Strings(finals)
	return finals
}

// EliminateEpsilon returns the transitions and final states of the ε-free
// automaton equivalent to a. When a has no ε-transitions its own transitions
// and finals are returned as copies, minus any ε key without targets.
func EliminateEpsilon(a domain.Automaton, closures domain.Closures) (domain.Transitions, []string) {
	if !HasEpsilon(a) {
		return a.Transitions.WithoutEpsilon(), slices.Clone(a.Finals)
	}
	return RebuildTransitions(a, closures), RebuildFinals(a, closures)
}

func closureOf(closures domain.Closures, state string) []string {
	closure, ok := closures[state]
	if !ok {
		panic(&domain.ContractError{
			Op:     "eliminate epsilon",
			Reason: fmt.Sprintf("closure map has no entry for state %q", state),
			Err:    domain.ErrUnknownState,
		})
	}
	return closure
}

func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
