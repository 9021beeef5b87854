package validation

import (
	"fmt"
	"sort"

	"github.com/aretw0/enfa/pkg/domain"
)

// Validate checks every invariant of a. It returns nil or an *AggregateError
// listing all violations, so that callers can report them in one go.
func Validate(a domain.Automaton) error {
	var errs []error
	fail := func(key, reason string, value any, sentinel error) {
		errs = append(errs, &ValidationError{Key: key, Reason: reason, Value: value, Err: sentinel})
	}

	if len(a.States) == 0 {
		fail("states", "must not be empty", nil, ErrEmptyStates)
	}
	if _, dups := dedupe(a.States); len(dups) > 0 {
		fail("states", "duplicate states", dups, nil)
	}

	if len(a.Symbols) == 0 {
		fail("symbols", "must not be empty", nil, ErrEmptyAlphabet)
	}
	if _, dups := dedupe(a.Symbols); len(dups) > 0 {
		fail("symbols", "duplicate symbols", dups, nil)
	}
	for _, s := range a.Symbols {
		if IsEpsilonAlias(s) {
			fail("symbols", "epsilon cannot be an alphabet symbol", s, ErrReservedSymbol)
		}
	}

	if !a.HasState(a.Start) {
		fail("start", "not a declared state", a.Start, ErrUnknownStart)
	}

	for _, f := range a.Finals {
		if !a.HasState(f) {
			fail("finals", "not a declared state", f, ErrUnknownFinal)
		}
	}

	for _, from := range sortedKeys(a.Transitions) {
		if !a.HasState(from) {
			fail("transitions", "unknown source state", from, domain.ErrUnknownState)
		}
		for _, label := range sortedKeys(a.Transitions[from]) {
			if label != domain.Epsilon && !a.HasSymbol(label) {
				fail("transitions", fmt.Sprintf("label of %s is not in the alphabet", from), label, domain.ErrUnknownSymbol)
			}
			for _, to := range a.Transitions[from][label] {
				if !a.HasState(to) {
					fail("transitions", fmt.Sprintf("unknown target state of %s --(%s)-->", from, label), to, domain.ErrUnknownState)
				}
			}
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
