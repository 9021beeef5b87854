package engine_test

import (
	"context"
	"testing"

	"github.com/aretw0/enfa/pkg/domain"
	"github.com/aretw0/enfa/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = domain.Epsilon

// chain is A --ε--> B --a--> C with C accepting.
func chain() domain.Automaton {
	return domain.Automaton{
		States:  []string{"A", "B", "C"},
		Symbols: []string{"a"},
		Start:   "A",
		Finals:  []string{"C"},
		Transitions: domain.Transitions{
			"A": {eps: {"B"}},
			"B": {"a": {"C"}},
		},
	}
}

func epsilonFree() domain.Automaton {
	return domain.Automaton{
		States:  []string{"X", "Y"},
		Symbols: []string{"a"},
		Start:   "X",
		Finals:  []string{"Y"},
		Transitions: domain.Transitions{
			"X": {"a": {"Y"}},
		},
	}
}

func cyclic() domain.Automaton {
	return domain.Automaton{
		States:  []string{"A", "B", "C"},
		Symbols: []string{"a", "b"},
		Start:   "A",
		Finals:  []string{"B"},
		Transitions: domain.Transitions{
			"A": {eps: {"B"}, "a": {"C"}},
			"B": {eps: {"A"}},
			"C": {"b": {"A"}},
		},
	}
}

func TestHasEpsilon(t *testing.T) {
	assert.True(t, engine.HasEpsilon(chain()))
	assert.True(t, engine.HasEpsilon(cyclic()))
	assert.False(t, engine.HasEpsilon(epsilonFree()))

	// An ε key with an empty target set is not a transition.
	a := epsilonFree()
	a.Transitions["Y"] = map[string][]string{eps: {}}
	assert.False(t, engine.HasEpsilon(a))
}

func TestEliminateEpsilon_DropsEmptyEpsilonKey(t *testing.T) {
	a := epsilonFree()
	a.Transitions["X"][eps] = []string{}

	transitions, finals := engine.EliminateEpsilon(a, engine.AllEpsilonClosures(a))
	assert.Equal(t, domain.Transitions{"X": {"a": {"Y"}}}, transitions)
	assert.Equal(t, []string{"Y"}, finals)
	assert.Contains(t, a.Transitions["X"], eps, "input must be left untouched")
}

func TestEpsilonClosure_Chain(t *testing.T) {
	a := chain()

	assert.Equal(t, []string{"A", "B"}, engine.EpsilonClosure(a, "A"))
	assert.Equal(t, []string{"B"}, engine.EpsilonClosure(a, "B"))
	assert.Equal(t, []string{"C"}, engine.EpsilonClosure(a, "C"))
}

func TestEpsilonClosure_CycleTerminates(t *testing.T) {
	a := domain.Automaton{
		States:  []string{"A", "B"},
		Symbols: []string{"a"},
		Start:   "A",
		Transitions: domain.Transitions{
			"A": {eps: {"B"}},
			"B": {eps: {"A"}},
		},
	}

	assert.Equal(t, []string{"A", "B"}, engine.EpsilonClosure(a, "A"))
	assert.Equal(t, []string{"A", "B"}, engine.EpsilonClosure(a, "B"))
}

func TestEpsilonClosure_DuplicateEdgesCollapse(t *testing.T) {
	a := domain.Automaton{
		States:  []string{"P", "Q", "R"},
		Symbols: []string{"x"},
		Start:   "P",
		Transitions: domain.Transitions{
			"P": {eps: {"Q", "Q", "R"}},
			"Q": {eps: {"R"}},
			"R": {eps: {"R"}},
		},
	}

	assert.Equal(t, []string{"P", "Q", "R"}, engine.EpsilonClosure(a, "P"))
	assert.Equal(t, []string{"R"}, engine.EpsilonClosure(a, "R"))
}

func TestEpsilonClosure_Properties(t *testing.T) {
	for name, a := range map[string]domain.Automaton{
		"chain":  chain(),
		"cyclic": cyclic(),
		"free":   epsilonFree(),
	} {
		t.Run(name, func(t *testing.T) {
			closures := engine.AllEpsilonClosures(a)
			require.Len(t, closures, len(a.States))

			for _, s := range a.States {
				closure := closures[s]
				assert.Contains(t, closure, s, "closure must be reflexive")
				assert.IsNonDecreasing(t, closure)

				for _, member := range closure {
					assert.Subset(t, closure, closures[member], "closure(%s) must absorb closure(%s)", s, member)
				}
			}
		})
	}
}

func TestEpsilonClosure_UnknownStatePanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		ce, ok := r.(*domain.ContractError)
		require.True(t, ok, "expected *domain.ContractError, got %T", r)
		assert.ErrorIs(t, ce, domain.ErrUnknownState)
		assert.Contains(t, ce.Error(), `"Z"`)
	}()
	engine.EpsilonClosure(chain(), "Z")
}

func TestAllEpsilonClosuresParallel(t *testing.T) {
	a := cyclic()
	want := engine.AllEpsilonClosures(a)

	for _, workers := range []int{0, 1, 2, 8} {
		got, err := engine.AllEpsilonClosuresParallel(context.Background(), a, workers)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestAllEpsilonClosuresParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.AllEpsilonClosuresParallel(ctx, cyclic(), 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEliminateEpsilon_Chain(t *testing.T) {
	a := chain()
	closures := engine.AllEpsilonClosures(a)

	transitions, finals := engine.EliminateEpsilon(a, closures)

	assert.Equal(t, []string{"C"}, transitions["A"]["a"])
	assert.Equal(t, []string{"C"}, transitions["B"]["a"])
	assert.Equal(t, []string{"C"}, finals)

	for _, s := range a.States {
		_, hasEps := transitions[s][eps]
		assert.False(t, hasEps, "state %s still has an ε entry", s)
	}
}

func TestEliminateEpsilon_ExplicitEmptyCell(t *testing.T) {
	a := chain()
	transitions, _ := engine.EliminateEpsilon(a, engine.AllEpsilonClosures(a))

	cell, ok := transitions["C"]["a"]
	require.True(t, ok, "missing cell for (C, a)")
	assert.NotNil(t, cell)
	assert.Empty(t, cell)
}

func TestEliminateEpsilon_NoEpsilonIsNoop(t *testing.T) {
	a := epsilonFree()
	assert.False(t, engine.HasEpsilon(a))

	transitions, finals := engine.EliminateEpsilon(a, engine.AllEpsilonClosures(a))
	assert.Equal(t, a.Transitions, transitions)
	assert.Equal(t, a.Finals, finals)

	// Result must not alias the input.
	transitions["X"]["a"][0] = "Z"
	assert.Equal(t, []string{"Y"}, a.Transitions["X"]["a"])
}

func TestEliminateEpsilon_EmptyFinals(t *testing.T) {
	for name, a := range map[string]domain.Automaton{
		"chain":  chain(),
		"cyclic": cyclic(),
		"free":   epsilonFree(),
	} {
		t.Run(name, func(t *testing.T) {
			a.Finals = nil
			_, finals := engine.EliminateEpsilon(a, engine.AllEpsilonClosures(a))
			assert.Empty(t, finals)
		})
	}
}

func TestEliminateEpsilon_Cyclic(t *testing.T) {
	a := cyclic()
	closures := engine.AllEpsilonClosures(a)

	transitions, finals := engine.EliminateEpsilon(a, closures)

	// A and B share a closure {A, B}; reading a from either lands in C.
	assert.Equal(t, []string{"C"}, transitions["A"]["a"])
	assert.Equal(t, []string{"C"}, transitions["B"]["a"])
	assert.Empty(t, transitions["A"]["b"])
	// C --b--> A, and closure(A) = {A, B}.
	assert.Equal(t, []string{"A", "B"}, transitions["C"]["b"])
	assert.Empty(t, transitions["C"]["a"])
	assert.Equal(t, []string{"A", "B"}, finals)
}

func TestRebuildTransitions_MissingClosurePanics(t *testing.T) {
	a := chain()
	closures := engine.AllEpsilonClosures(a)
	delete(closures, "C")

	assert.Panics(t, func() {
		engine.RebuildTransitions(a, closures)
	})
}

func TestRebuildFinals_Sorted(t *testing.T) {
	a := domain.Automaton{
		States:  []string{"q2", "q0", "q1"},
		Symbols: []string{"0"},
		Start:   "q0",
		Finals:  []string{"q2"},
		Transitions: domain.Transitions{
			"q0": {eps: {"q1"}},
			"q1": {eps: {"q2"}},
		},
	}

	finals := engine.RebuildFinals(a, engine.AllEpsilonClosures(a))
	assert.Equal(t, []string{"q0", "q1", "q2"}, finals)
}
