/*
Package enfa converts nondeterministic finite automata with ε-transitions
(ε-NFAs) into equivalent NFAs without them.

# Concept

The conversion is a short pipeline of pure functions (see package engine):
detect ε-transitions, compute the ε-closure of every state, rebuild the
transition table so that each move absorbs the closures around it, and mark as
accepting every state whose closure reaches an original final state. The
accepted language is preserved.

Everything else (interactive prompting, file formats, HTTP, storage) lives in
adapters around that core, following a Hexagonal Architecture.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/enfa"
		"github.com/aretw0/enfa/pkg/dsl"
	)

	func main() {
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

		conv, err := enfa.New().Convert(context.Background(), a)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(conv.Transitions["A"]["a"]) // [C]
		fmt.Println(conv.Finals)               // [C]
	}

# Packages

  - pkg/domain: Automaton, Closures and Conversion types.
  - pkg/engine: The ε-elimination algorithms.
  - pkg/validation: Input parsing and invariant checks.
  - pkg/dsl: Fluent builder producing immutable automata.
  - pkg/runner: Interactive console session.
  - pkg/adapters: File loading, storage (memory, Redis), HTTP and MCP servers.
*/
package enfa
