// Package table renders automata as fixed-width text for terminals.
package table

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/enfa/pkg/domain"
)

const (
	StateWidth  = 6
	SymbolWidth = 12
	separator   = " | "
)

// FormatSet renders a state set as "{A, B}", or Ø when it is empty.
func FormatSet(set []string) string {
	if len(set) == 0 {
		return domain.EmptySet
	}
	return "{" + strings.Join(set, ", ") + "}"
}

// Center pads s with spaces to width runes, extra space going right.
// Longer strings are returned unchanged.
func Center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// WriteTransitions writes the transition table of a: one row per state, one
// column per symbol. Missing and empty cells show Ø. Columns grow to fit
// their widest cell.
func WriteTransitions(w io.Writer, a domain.Automaton) error {
	stateWidth := StateWidth
	for _, s := range a.States {
		stateWidth = max(stateWidth, utf8.RuneCountInString(s))
	}
	widths := make([]int, len(a.Symbols))
	for i, sym := range a.Symbols {
		widths[i] = max(SymbolWidth, utf8.RuneCountInString(sym))
		for _, s := range a.States {
			widths[i] = max(widths[i], utf8.RuneCountInString(FormatSet(a.Transitions.Targets(s, sym))))
		}
	}

	var b strings.Builder
	b.WriteString(Center("State", stateWidth) + separator)
	for i, sym := range a.Symbols {
		b.WriteString(Center(sym, widths[i]) + separator)
	}
	header := b.String()

	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", utf8.RuneCountInString(header))); err != nil {
		return err
	}

	for _, s := range a.States {
		b.Reset()
		b.WriteString(Center(s, stateWidth) + separator)
		for i, sym := range a.Symbols {
			b.WriteString(Center(FormatSet(a.Transitions.Targets(s, sym)), widths[i]) + separator)
		}
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteClosures writes one "ε-closure(S) = {...}" line per state, in state order.
func WriteClosures(w io.Writer, states []string, closures domain.Closures) error {
	for _, s := range states {
		if _, err := fmt.Fprintf(w, "ε-closure(%s) = %s\n", s, FormatSet(closures[s])); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary writes the converted automaton: its sets followed by the transition table.
func WriteSummary(w io.Writer, conv *domain.Conversion) error {
	rule := strings.Repeat("=", 50)
	a := conv.Automaton()

	_, err := fmt.Fprintf(w, "\n%s\nNFA without ε-transitions\n%s\n"+
		"States: %s\nAlphabet: %s\nStart state: %s\nFinal states: %s\n\nTransition Table:\n",
		rule, rule,
		FormatSet(a.States), FormatSet(a.Symbols), a.Start, FormatSet(a.Finals))
	if err != nil {
		return err
	}
	return WriteTransitions(w, a)
}
