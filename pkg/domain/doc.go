/*
Package domain contains the core data model of the enfa conversion engine.

It defines the automaton being converted, the ε-closure map computed from it and
the conversion result handed back to callers. This package is kept pure and free
of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Automaton: An ε-NFA (States, Symbols, Start, Finals, Transitions). Immutable once built.
  - Transitions: state -> label -> sorted target set. The ε label is always Epsilon.
  - Closures: state -> sorted set of states reachable through ε-moves only.
  - Conversion: The ε-free automaton plus the closures used to derive it.
*/
package domain
