package domain

import "fmt"

// Transition is a single (source, label, target) triple.
// Two transitions with the same triple are the same set element.
type Transition struct {
	From  string `json:"from" yaml:"from"`
	Label string `json:"label" yaml:"label"`
	To    string `json:"to" yaml:"to"`
}

// IsEpsilon reports whether the transition is an ε-move.
func (t Transition) IsEpsilon() bool {
	return t.Label == Epsilon
}

func (t Transition) String() string {
	return fmt.Sprintf("%s --(%s)--> %s", t.From, t.Label, t.To)
}

func (t Transition) less(o Transition) bool {
	if t.From != o.From {
		return t.From < o.From
	}
	if t.Label != o.Label {
		return t.Label < o.Label
	}
	return t.To < o.To
}
