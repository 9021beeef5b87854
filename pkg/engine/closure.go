package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/aretw0/enfa/pkg/domain"
	"golang.org/x/sync/errgroup"
)

// EpsilonClosure returns the states reachable from state through zero or more
// ε-transitions, sorted by identifier. The result always contains state.
func EpsilonClosure(a domain.Automaton, state string) []string {
	if !a.HasState(state) {
		panic(&domain.ContractError{
			Op:     "epsilon closure",
			Reason: fmt.Sprintf("state %q is not declared", state),
			Err:    domain.ErrUnknownState,
		})
	}

	visited := map[string]bool{}
	stack := []string{state}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, next := range a.Transitions[current][domain.Epsilon] {
			if !visited[next] {
				stack = append(stack, next)
			}
		}
	}

	closure := make([]string, 0, len(visited))
	for s := range visited {
		closure = append(closure, s)
	}
	sort.Strings(closure)
	return closure
}

// AllEpsilonClosures computes the closure of every state.
func AllEpsilonClosures(a domain.Automaton) domain.Closures {
	closures := make(domain.Closures, len(a.States))
	for _, state := range a.States {
		closures[state] = EpsilonClosure(a, state)
	}
	return closures
}

// AllEpsilonClosuresParallel is AllEpsilonClosures spread over at most workers
// goroutines. Each worker fills only its own slot, so no locking is needed.
// A cancelled ctx stops scheduling and returns ctx.Err().
func AllEpsilonClosuresParallel(ctx context.Context, a domain.Automaton, workers int) (domain.Closures, error) {
	if workers <= 1 {
		return AllEpsilonClosures(a), nil
	}

	results := make([][]string, len(a.States))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, state := range a.States {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = EpsilonClosure(a, state)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	closures := make(domain.Closures, len(a.States))
	for i, state := range a.States {
		closures[state] = results[i]
	}
	return closures, nil
}
