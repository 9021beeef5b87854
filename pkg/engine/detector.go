package engine

import "github.com/aretw0/enfa/pkg/domain"

// HasEpsilon reports whether any state has an outgoing ε-transition.
func HasEpsilon(a domain.Automaton) bool {
	for _, state := range a.States {
		if len(a.Transitions[state][domain.Epsilon]) > 0 {
			return true
		}
	}
	return false
}
