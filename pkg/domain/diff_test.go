package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name        string
		old         Transitions
		new         Transitions
		wantAdded   []Transition
		wantRemoved []Transition
		wantNil     bool
	}{
		{
			name:    "No Changes",
			old:     Transitions{"A": {"a": {"B"}}},
			new:     Transitions{"A": {"a": {"B"}}},
			wantNil: true,
		},
		{
			name:    "Empty Target Set Is No Edge",
			old:     Transitions{"A": {"a": {"B"}}},
			new:     Transitions{"A": {"a": {"B"}}, "B": {"a": {}}},
			wantNil: true,
		},
		{
			name: "Epsilon Removed And Edge Added",
			old: Transitions{
				"A": {Epsilon: {"B"}},
				"B": {"a": {"C"}},
			},
			new: Transitions{
				"A": {"a": {"C"}},
				"B": {"a": {"C"}},
			},
			wantAdded:   []Transition{{From: "A", Label: "a", To: "C"}},
			wantRemoved: []Transition{{From: "A", Label: Epsilon, To: "B"}},
		},
		{
			name:      "Initial Load (Old is Nil)",
			old:       nil,
			new:       Transitions{"X": {"b": {"Y", "Z"}}},
			wantAdded: []Transition{{From: "X", Label: "b", To: "Y"}, {From: "X", Label: "b", To: "Z"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.old, tt.new)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.Equal(t, tt.wantAdded, got.Added)
				assert.Equal(t, tt.wantRemoved, got.Removed)
			}
		})
	}
}

func TestTransitionDiff_EpsilonRemoved(t *testing.T) {
	d := &TransitionDiff{Removed: []Transition{
		{From: "A", Label: Epsilon, To: "B"},
		{From: "B", Label: Epsilon, To: "A"},
		{From: "B", Label: "a", To: "C"},
	}}
	assert.Equal(t, 2, d.EpsilonRemoved())

	var empty *TransitionDiff
	assert.Equal(t, 0, empty.EpsilonRemoved())
	assert.True(t, empty.IsEmpty())
}
