/*
Package dsl provides a fluent builder for constructing ε-NFAs in Go code.

The builder accumulates states, symbols and transitions incrementally and
finalises them into an immutable domain.Automaton. Labels are normalised on
insertion, so "e", "eps" and "epsilon" all become domain.Epsilon, and inserting
the same (source, label, target) triple twice is a no-op that is recorded as a
duplicate.

Example usage:

	a, err := dsl.New().
		States("A", "B", "C").
		Symbols("a").
		Start("A").
		Final("C").
		Epsilon("A", "B").
		On("B", "a", "C").
		Build()
	if err != nil {
		log.Fatal(err)
	}

	conv, err := enfa.New().Convert(ctx, a)
*/
package dsl
