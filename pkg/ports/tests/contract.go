package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/enfa/pkg/domain"
	"github.com/aretw0/enfa/pkg/ports"
)

func fixture() *domain.Conversion {
	return &domain.Conversion{
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Source: domain.Automaton{
			States:  []string{"A", "B", "C"},
			Symbols: []string{"a"},
			Start:   "A",
			Finals:  []string{"C"},
			Transitions: domain.Transitions{
				"A": {domain.Epsilon: {"B"}},
				"B": {"a": {"C"}},
			},
		},
		HadEpsilon: true,
		Closures:   domain.Closures{"A": {"A", "B"}, "B": {"B"}, "C": {"C"}},
		Transitions: domain.Transitions{
			"A": {"a": {"C"}},
			"B": {"a": {"C"}},
			"C": {"a": {}},
		},
		Finals: []string{"C"},
	}
}

// ConversionStoreContractTest is a reusable test suite that verifies if an adapter complies with ports.ConversionStore.
func ConversionStoreContractTest(t *testing.T, store ports.ConversionStore) {
	t.Helper()
	ctx := context.Background()
	id := "contract-conversion"

	// 1. Load non-existent conversion
	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := store.Load(ctx, id)
		if !errors.Is(err, domain.ErrConversionNotFound) {
			t.Errorf("expected ErrConversionNotFound, got %v", err)
		}
	})

	// 2. Save and Load round trip
	t.Run("Save_Load", func(t *testing.T) {
		conv := fixture()
		if err := store.Save(ctx, id, conv); err != nil {
			t.Fatalf("failed to save conversion: %v", err)
		}

		loaded, err := store.Load(ctx, id)
		if err != nil {
			t.Fatalf("failed to load conversion: %v", err)
		}
		if !loaded.HadEpsilon {
			t.Error("expected HadEpsilon to survive the round trip")
		}
		if got := loaded.Transitions.Targets("A", "a"); len(got) != 1 || got[0] != "C" {
			t.Errorf("expected A --a--> [C], got %v", got)
		}
		if cell, ok := loaded.Transitions["C"]["a"]; !ok || len(cell) != 0 {
			t.Errorf("expected explicit empty cell for (C, a), got %v (present=%v)", cell, ok)
		}
		if got := loaded.Closures["A"]; len(got) != 2 {
			t.Errorf("expected closure(A) = [A B], got %v", got)
		}
		if !loaded.CreatedAt.Equal(conv.CreatedAt) {
			t.Errorf("expected CreatedAt %v, got %v", conv.CreatedAt, loaded.CreatedAt)
		}
	})

	// 3. Stored value is isolated from the caller
	t.Run("Isolation", func(t *testing.T) {
		conv := fixture()
		if err := store.Save(ctx, id, conv); err != nil {
			t.Fatalf("failed to save conversion: %v", err)
		}
		conv.Finals[0] = "mutated"

		loaded, err := store.Load(ctx, id)
		if err != nil {
			t.Fatalf("failed to load conversion: %v", err)
		}
		if loaded.Finals[0] != "C" {
			t.Errorf("store kept a reference to the caller's data: finals=%v", loaded.Finals)
		}
	})

	// 4. List
	t.Run("List", func(t *testing.T) {
		ids, err := store.List(ctx)
		if err != nil {
			t.Fatalf("failed to list conversions: %v", err)
		}
		found := false
		for _, got := range ids {
			if got == id {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %q in %v", id, ids)
		}
	})

	// 5. Delete
	t.Run("Delete", func(t *testing.T) {
		if err := store.Delete(ctx, id); err != nil {
			t.Fatalf("failed to delete conversion: %v", err)
		}
		_, err := store.Load(ctx, id)
		if !errors.Is(err, domain.ErrConversionNotFound) {
			t.Errorf("expected ErrConversionNotFound after delete, got %v", err)
		}
	})
}
