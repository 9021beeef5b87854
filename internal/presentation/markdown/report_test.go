package markdown

import (
	"testing"

	"github.com/aretw0/enfa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conversion(hadEpsilon bool) *domain.Conversion {
	conv := &domain.Conversion{
		Source: domain.Automaton{
			States:  []string{"A", "B"},
			Symbols: []string{"a"},
			Start:   "A",
			Finals:  []string{"B"},
		},
		HadEpsilon:  hadEpsilon,
		Transitions: domain.Transitions{"A": {"a": {"B"}}, "B": {"a": {}}},
		Finals:      []string{"A", "B"},
	}
	if hadEpsilon {
		conv.Closures = domain.Closures{"A": {"A", "B"}, "B": {"B"}}
	}
	return conv
}

func TestReport(t *testing.T) {
	md := Report(conversion(true))

	assert.Contains(t, md, "- **New final states:** `A`, `B`")
	assert.Contains(t, md, "| A | {A, B} |")
	assert.Contains(t, md, "| State | a |")
	assert.Contains(t, md, "| B | Ø |")
	assert.NotContains(t, md, "already a valid NFA")
}

func TestReport_NoEpsilon(t *testing.T) {
	md := Report(conversion(false))
	assert.Contains(t, md, "already a valid NFA")
	assert.NotContains(t, md, "ε-closures")
}

func TestRender(t *testing.T) {
	out, err := Render(Report(conversion(true)), "ascii", 80)
	require.NoError(t, err)
	assert.Contains(t, out, "conversion")
	assert.Contains(t, out, "{A, B}")
}
