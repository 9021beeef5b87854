package domain

import (
	"slices"
	"sort"
)

// Transitions maps a source state to its outgoing labels and their target sets.
// Target sets are sorted and deduplicated. A missing entry means "no transition".
type Transitions map[string]map[string][]string

// Targets returns the target set for (state, label), or nil when there is none.
func (t Transitions) Targets(state, label string) []string {
	return t[state][label]
}

// Clone returns a deep copy.
func (t Transitions) Clone() Transitions {
	if t == nil {
		return nil
	}
	out := make(Transitions, len(t))
	for from, byLabel := range t {
		labels := make(map[string][]string, len(byLabel))
		for label, targets := range byLabel {
			labels[label] = slices.Clone(targets)
		}
		out[from] = labels
	}
	return out
}

// WithoutEpsilon returns a deep copy with every ε entry removed.
func (t Transitions) WithoutEpsilon() Transitions {
	out := t.Clone()
	for _, byLabel := range out {
		delete(byLabel, Epsilon)
	}
	return out
}

// Edges flattens the mapping into individual transitions, ordered by source,
// label and target so that output is reproducible.
func (t Transitions) Edges() []Transition {
	var edges []Transition
	for from, byLabel := range t {
		for label, targets := range byLabel {
			for _, to := range targets {
				edges = append(edges, Transition{From: from, Label: label, To: to})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].less(edges[j])
	})
	return edges
}

// Closures maps every state to the sorted set of states reachable from it
// through zero or more ε-transitions. Each set contains the state itself.
type Closures map[string][]string

// Clone returns a deep copy.
func (c Closures) Clone() Closures {
	if c == nil {
		return nil
	}
	out := make(Closures, len(c))
	for state, closure := range c {
		out[state] = slices.Clone(closure)
	}
	return out
}

// Automaton describes an ε-NFA.
// States and Symbols keep insertion order for display; both are unique.
type Automaton struct {
	States      []string    `json:"states" yaml:"states"`
	Symbols     []string    `json:"symbols" yaml:"symbols"`
	Start       string      `json:"start" yaml:"start"`
	Finals      []string    `json:"finals" yaml:"finals"`
	Transitions Transitions `json:"transitions" yaml:"transitions"`
}

// HasState reports whether s is a declared state.
func (a Automaton) HasState(s string) bool {
	return slices.Contains(a.States, s)
}

// HasSymbol reports whether s belongs to the alphabet.
func (a Automaton) HasSymbol(s string) bool {
	return slices.Contains(a.Symbols, s)
}

// IsFinal reports whether s is an accepting state.
func (a Automaton) IsFinal(s string) bool {
	return slices.Contains(a.Finals, s)
}

// Clone returns a deep copy.
func (a Automaton) Clone() Automaton {
	return Automaton{
		States:      slices.Clone(a.States),
		Symbols:     slices.Clone(a.Symbols),
		Start:       a.Start,
		Finals:      slices.Clone(a.Finals),
		Transitions: a.Transitions.Clone(),
	}
}
