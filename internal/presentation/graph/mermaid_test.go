package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/enfa/internal/presentation/graph"
	"github.com/aretw0/enfa/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func chain() domain.Automaton {
	return domain.Automaton{
		States:  []string{"A", "B", "C"},
		Symbols: []string{"a", "b"},
		Start:   "A",
		Finals:  []string{"C"},
		Transitions: domain.Transitions{
			"A": {domain.Epsilon: {"B"}},
			"B": {"a": {"C"}, "b": {"C"}},
		},
	}
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		a        domain.Automaton
		overlay  *graph.GraphOverlay
		contains []string
		excludes []string
	}{
		{
			name: "Shapes And Start",
			a:    chain(),
			contains: []string{
				"flowchart LR",
				"__start__[ ] --> s_A",
				"s_A((\"A\"))",
				"s_C(((\"C\")))",
			},
		},
		{
			name: "Epsilon Edge Labelled",
			a:    chain(),
			contains: []string{
				"s_A -- \"ε\" --> s_B",
			},
		},
		{
			name: "Parallel Labels Merged",
			a:    chain(),
			contains: []string{
				"s_B -- \"a, b\" --> s_C",
			},
		},
		{
			name: "Sanitized IDs",
			a: domain.Automaton{
				States: []string{"q.1", "q-2"},
				Start:  "q.1",
				Transitions: domain.Transitions{
					"q.1": {"x": {"q-2"}},
				},
			},
			contains: []string{
				"s_q_1((\"q.1\"))",
				"s_q_1 -- \"x\" --> s_q_2",
			},
		},
		{
			name: "Overlay",
			a: domain.Automaton{
				States:  []string{"A", "C"},
				Start:   "A",
				Finals:  []string{"A", "C"},
				Symbols: []string{"a"},
				Transitions: domain.Transitions{
					"A": {"a": {"C"}},
				},
			},
			overlay: &graph.GraphOverlay{
				AddedEdges: []domain.Transition{{From: "A", Label: "a", To: "C"}},
				NewFinals:  []string{"A"},
			},
			contains: []string{
				"s_A -. \"a\" .-> s_C",
				"class s_A newFinal;",
			},
			excludes: []string{
				"s_A -- \"a\" --> s_C",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.a, tt.overlay)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestGenerateMermaid_NoOverlayStyles(t *testing.T) {
	got := graph.GenerateMermaid(chain(), nil)
	assert.False(t, strings.Contains(got, "classDef"))
}
