package domain

// Epsilon is the canonical label for transitions consumed without reading a symbol.
// Textual aliases ("e", "eps", "epsilon") are normalised to it at parse time.
const Epsilon = "ε"

// EmptySet is the display marker for a (state, symbol) pair with no targets.
const EmptySet = "Ø"
