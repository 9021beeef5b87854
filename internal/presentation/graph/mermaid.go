package graph

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/aretw0/enfa/pkg/domain"
)

// GraphOverlay highlights the outcome of a conversion on top of a graph.
type GraphOverlay struct {
	AddedEdges []domain.Transition // drawn dotted
	NewFinals  []string            // finals that were not final in the source
}

// GenerateMermaid produces a Mermaid flowchart for an automaton.
// It applies semantic styling:
// - Start: entry arrow from a hidden point
// - Final: (((Double circle)))
// - Default: ((Circle))
// Parallel edges between two states are merged into one labelled arrow.
func GenerateMermaid(a domain.Automaton, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("flowchart LR\n")

	if a.Start != "" {
		fmt.Fprintf(&sb, "    __start__[ ] --> %s\n", sanitizeMermaidID(a.Start))
		sb.WriteString("    style __start__ fill:none,stroke:none\n")
	}

	for _, s := range a.States {
		opener, closer := "((", "))"
		if a.IsFinal(s) {
			opener, closer = "(((", ")))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", sanitizeMermaidID(s), opener, escape(s), closer)
	}

	added := map[domain.Transition]bool{}
	if overlay != nil {
		for _, e := range overlay.AddedEdges {
			added[e] = true
		}
	}

	for _, e := range mergeEdges(a.Transitions.Edges(), added) {
		arrow := fmt.Sprintf("-- \"%s\" -->", escape(e.labels))
		if e.added {
			arrow = fmt.Sprintf("-. \"%s\" .->", escape(e.labels))
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", sanitizeMermaidID(e.from), arrow, sanitizeMermaidID(e.to))
	}

	if overlay != nil && len(overlay.NewFinals) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds
		sb.WriteString("    classDef newFinal fill:#ffeb3b,stroke:#fbc02d,stroke-width:3px,color:#000;\n")
		for _, s := range overlay.NewFinals {
			fmt.Fprintf(&sb, "    class %s newFinal;\n", sanitizeMermaidID(s))
		}
	}

	return sb.String()
}

type mergedEdge struct {
	from, to string
	labels   string
	added    bool
}

// mergeEdges joins the labels of edges sharing endpoints. Added edges are kept
// apart so they can be drawn differently.
func mergeEdges(edges []domain.Transition, added map[domain.Transition]bool) []mergedEdge {
	type key struct {
		from, to string
		added    bool
	}
	labels := map[key][]string{}
	var order []key
	for _, e := range edges {
		k := key{e.From, e.To, added[e]}
		if _, ok := labels[k]; !ok {
			order = append(order, k)
		}
		labels[k] = append(labels[k], e.Label)
	}

	out := make([]mergedEdge, 0, len(order))
	for _, k := range order {
		ls := labels[k]
		sort.Strings(ls)
		out = append(out, mergedEdge{from: k.from, to: k.to, labels: strings.Join(ls, ", "), added: k.added})
	}
	return out
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	return "s_" + strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return '_'
	}, id)
}
