package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/enfa/pkg/domain"
)

// Warning is a non-fatal note about input that was accepted after adjustment.
type Warning struct {
	Field   string
	Message string
	Values  []string
}

func (w Warning) String() string {
	if len(w.Values) == 0 {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.Message, strings.Join(w.Values, ", "))
}

// ParseStates splits a whitespace-separated state list, dropping duplicates
// while keeping first-seen order.
func ParseStates(line string) ([]string, []Warning, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil, ErrEmptyStates
	}
	states, dups := dedupe(fields)
	return states, duplicateWarning("states", "Duplicate states were removed", dups), nil
}

// ParseSymbols splits a whitespace-separated alphabet. ε spellings are rejected.
func ParseSymbols(line string) ([]string, []Warning, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil, ErrEmptyAlphabet
	}
	for _, f := range fields {
		if IsEpsilonAlias(f) {
			return nil, nil, fmt.Errorf("%w: %q", ErrReservedSymbol, f)
		}
	}
	symbols, dups := dedupe(fields)
	return symbols, duplicateWarning("symbols", "Duplicate symbols were removed", dups), nil
}

// ParseStart checks that the trimmed line names a declared state.
func ParseStart(line string, states []string) (string, error) {
	start := strings.TrimSpace(line)
	if !slices.Contains(states, start) {
		return "", fmt.Errorf("start state '%s' is not in state list: %w", start, ErrUnknownStart)
	}
	return start, nil
}

// ParseFinals splits a whitespace-separated list of final states.
// An empty line returns ErrNoFinalStates, which callers should confirm with
// the user rather than reject: an automaton without finals accepts nothing
// but is still valid.
func ParseFinals(line string, states []string) ([]string, []Warning, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return []string{}, nil, ErrNoFinalStates
	}

	var unknown []string
	for _, f := range fields {
		if !slices.Contains(states, f) {
			unknown = append(unknown, f)
		}
	}
	if len(unknown) > 0 {
		return nil, nil, fmt.Errorf("final states [%s] are not in state list: %w", strings.Join(unknown, ", "), ErrUnknownFinal)
	}

	finals, dups := dedupe(fields)
	return finals, duplicateWarning("finals", "Duplicate final states were removed", dups), nil
}

// IsDone reports whether line ends transition entry.
func IsDone(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "done")
}

// ParseTransition reads one "state label state" line. The label is
// normalised with NormalizeLabel before it is checked against the alphabet.
func ParseTransition(line string, states, symbols []string) (domain.Transition, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return domain.Transition{}, ErrEmptyLine
	}

	parts := strings.Fields(line)
	if len(parts) != 3 {
		return domain.Transition{}, ErrFormat
	}

	t := domain.Transition{From: parts[0], Label: NormalizeLabel(parts[1]), To: parts[2]}

	if !t.IsEpsilon() && !slices.Contains(symbols, t.Label) {
		return domain.Transition{}, fmt.Errorf("symbol '%s' not in alphabet: %w", t.Label, domain.ErrUnknownSymbol)
	}
	if !slices.Contains(states, t.From) {
		return domain.Transition{}, fmt.Errorf("unknown from-state '%s': %w", t.From, domain.ErrUnknownState)
	}
	if !slices.Contains(states, t.To) {
		return domain.Transition{}, fmt.Errorf("unknown to-state '%s': %w", t.To, domain.ErrUnknownState)
	}
	return t, nil
}

func dedupe(fields []string) (unique, dups []string) {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f] {
			if !slices.Contains(dups, f) {
				dups = append(dups, f)
			}
			continue
		}
		seen[f] = true
		unique = append(unique, f)
	}
	return unique, dups
}

func duplicateWarning(field, msg string, dups []string) []Warning {
	if len(dups) == 0 {
		return nil
	}
	return []Warning{{Field: field, Message: msg, Values: dups}}
}
