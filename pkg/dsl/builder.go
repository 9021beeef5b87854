package dsl

import (
	"fmt"
	"slices"
	"sort"

	"github.com/aretw0/enfa/pkg/domain"
	"github.com/aretw0/enfa/pkg/validation"
)

// Builder manages the automaton construction.
// It is not safe for concurrent use.
type Builder struct {
	states      []string
	symbols     []string
	start       string
	finals      []string
	transitions map[string]map[string]map[string]bool
	duplicates  []domain.Transition
}

// New creates a new automaton builder.
func New() *Builder {
	return &Builder{
		transitions: make(map[string]map[string]map[string]bool),
	}
}

// States declares states, keeping first-seen order and skipping repeats.
func (b *Builder) States(states ...string) *Builder {
	b.states = appendUnique(b.states, states...)
	return b
}

// Symbols declares alphabet symbols, keeping first-seen order and skipping repeats.
func (b *Builder) Symbols(symbols ...string) *Builder {
	b.symbols = appendUnique(b.symbols, symbols...)
	return b
}

// Start sets the start state.
func (b *Builder) Start(state string) *Builder {
	b.start = state
	return b
}

// Final marks states as accepting.
func (b *Builder) Final(states ...string) *Builder {
	b.finals = appendUnique(b.finals, states...)
	return b
}

// On adds transitions from -> to for every target, reading label.
// The label is normalised, so ε aliases are accepted here.
func (b *Builder) On(from, label string, to ...string) *Builder {
	label = validation.NormalizeLabel(label)
	byLabel, ok := b.transitions[from]
	if !ok {
		byLabel = make(map[string]map[string]bool)
		b.transitions[from] = byLabel
	}
	targets, ok := byLabel[label]
	if !ok {
		targets = make(map[string]bool)
		byLabel[label] = targets
	}
	for _, t := range to {
		if targets[t] {
			b.duplicates = append(b.duplicates, domain.Transition{From: from, Label: label, To: t})
			continue
		}
		targets[t] = true
	}
	return b
}

// Epsilon adds ε-transitions from -> to.
func (b *Builder) Epsilon(from string, to ...string) *Builder {
	return b.On(from, domain.Epsilon, to...)
}

// Add inserts a parsed transition. It reports whether the triple was new.
func (b *Builder) Add(t domain.Transition) bool {
	before := len(b.duplicates)
	b.On(t.From, t.Label, t.To)
	return len(b.duplicates) == before
}

// Duplicates returns the transitions that were ignored because they had already been added.
func (b *Builder) Duplicates() []domain.Transition {
	return slices.Clone(b.duplicates)
}

// Build validates the accumulated data and returns it as an immutable automaton.
// The builder stays usable; later changes do not affect returned automata.
func (b *Builder) Build() (domain.Automaton, error) {
	a := domain.Automaton{
		States:      slices.Clone(b.states),
		Symbols:     slices.Clone(b.symbols),
		Start:       b.start,
		Finals:      slices.Clone(b.finals),
		Transitions: make(domain.Transitions, len(b.transitions)),
	}
	if a.Finals == nil {
		a.Finals = []string{}
	}

	for from, byLabel := range b.transitions {
		labels := make(map[string][]string, len(byLabel))
		for label, targets := range byLabel {
			if len(targets) == 0 {
				continue
			}
			set := make([]string, 0, len(targets))
			for t := range targets {
				set = append(set, t)
			}
			sort.Strings(set)
			labels[label] = set
		}
		if len(labels) > 0 {
			a.Transitions[from] = labels
		}
	}

	if err := validation.Validate(a); err != nil {
		return domain.Automaton{}, fmt.Errorf("invalid automaton: %w", err)
	}
	return a, nil
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}
