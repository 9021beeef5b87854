package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Title is the plain-text heading used when the output is not a terminal.
func Title(w io.Writer) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(w, "%s\nε-NFA to NFA Converter\n%s\n", rule, rule)
}

// PrintBanner outputs the coloured banner to f, or the plain title when f is
// not a terminal.
func PrintBanner(f *os.File) {
	if !IsTerminal(f) {
		Title(f)
		return
	}

	out := termenv.NewOutput(f)
	p := out.ColorProfile()
	// Using a subtle gradient-like color scheme (Indigo/Violet)
	lines := []struct{ text, color string }{
		{"   ___  _ __   / _| __ _ ", "#818cf8"},
		{"  / _ \\| '_ \\ | |_ / _` |", "#a78bfa"},
		{" |  __/| | | ||  _| (_| |", "#c084fc"},
		{"  \\___||_| |_||_|  \\__,_|", "#e879f9"},
	}

	fmt.Fprintln(f)
	for _, l := range lines {
		fmt.Fprintln(f, out.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(f, out.String("  ε-NFA to NFA Converter").Faint())
	fmt.Fprintln(f)
}
