package domain

import (
	"slices"
	"time"
)

// Conversion is the result of removing ε-transitions from an automaton.
// States, Symbols and Start are those of Source; Transitions carries no ε entries.
type Conversion struct {
	ID        string    `json:"id,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Source Automaton `json:"source"`

	// HadEpsilon is false when Source was already ε-free; Transitions and
	// Finals are then copies of the source ones.
	HadEpsilon bool `json:"had_epsilon"`

	Closures    Closures    `json:"closures,omitempty"`
	Transitions Transitions `json:"transitions"`
	Finals      []string    `json:"finals"`
}

// Automaton returns the converted ε-free automaton.
func (c *Conversion) Automaton() Automaton {
	return Automaton{
		States:      slices.Clone(c.Source.States),
		Symbols:     slices.Clone(c.Source.Symbols),
		Start:       c.Source.Start,
		Finals:      slices.Clone(c.Finals),
		Transitions: c.Transitions.Clone(),
	}
}

// Clone returns a deep copy so stores can isolate callers from their internals.
func (c *Conversion) Clone() *Conversion {
	if c == nil {
		return nil
	}
	out := *c
	out.Source = c.Source.Clone()
	out.Closures = c.Closures.Clone()
	out.Transitions = c.Transitions.Clone()
	out.Finals = slices.Clone(c.Finals)
	return &out
}
