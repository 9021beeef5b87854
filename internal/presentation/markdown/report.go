// Package markdown builds conversion reports and renders them for terminals.
package markdown

import (
	"fmt"
	"strings"

	"github.com/aretw0/enfa/internal/presentation/table"
	"github.com/aretw0/enfa/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// Report builds a Markdown document describing a conversion.
func Report(conv *domain.Conversion) string {
	var b strings.Builder
	src := conv.Source

	b.WriteString("# ε-NFA to NFA conversion\n\n")
	fmt.Fprintf(&b, "- **States:** %s\n", code(src.States))
	fmt.Fprintf(&b, "- **Alphabet:** %s\n", code(src.Symbols))
	fmt.Fprintf(&b, "- **Start state:** `%s`\n", src.Start)
	fmt.Fprintf(&b, "- **Original final states:** %s\n", code(src.Finals))
	fmt.Fprintf(&b, "- **New final states:** %s\n\n", code(conv.Finals))

	if !conv.HadEpsilon {
		b.WriteString("> No ε-transitions found. This is already a valid NFA.\n\n")
	} else {
		b.WriteString("## ε-closures\n\n| State | ε-closure |\n|---|---|\n")
		for _, s := range src.States {
			fmt.Fprintf(&b, "| %s | %s |\n", s, table.FormatSet(conv.Closures[s]))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Transitions\n\n| State |")
	for _, sym := range src.Symbols {
		fmt.Fprintf(&b, " %s |", sym)
	}
	b.WriteString("\n|---|")
	b.WriteString(strings.Repeat("---|", len(src.Symbols)))
	b.WriteString("\n")
	for _, s := range src.States {
		fmt.Fprintf(&b, "| %s |", s)
		for _, sym := range src.Symbols {
			fmt.Fprintf(&b, " %s |", table.FormatSet(conv.Transitions.Targets(s, sym)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func code(set []string) string {
	if len(set) == 0 {
		return domain.EmptySet
	}
	return "`" + strings.Join(set, "`, `") + "`"
}

// Render formats Markdown for the terminal. An empty style detects a
// light or dark background automatically.
func Render(md, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render(md)
}
