package validation

import (
	"strings"

	"github.com/aretw0/enfa/pkg/domain"
)

// EpsilonAliases are the spellings accepted for an ε label, compared case-insensitively.
var EpsilonAliases = []string{"e", "eps", "epsilon", domain.Epsilon}

// IsEpsilonAlias reports whether label spells ε.
func IsEpsilonAlias(label string) bool {
	l := strings.ToLower(strings.TrimSpace(label))
	for _, alias := range EpsilonAliases {
		if l == alias {
			return true
		}
	}
	return false
}

// NormalizeLabel maps every ε spelling to domain.Epsilon and leaves other labels untouched.
func NormalizeLabel(label string) string {
	if IsEpsilonAlias(label) {
		return domain.Epsilon
	}
	return label
}
