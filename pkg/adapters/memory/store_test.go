package memory_test

import (
	"testing"

	"github.com/aretw0/enfa/pkg/adapters/memory"
	"github.com/aretw0/enfa/pkg/ports/tests"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	tests.ConversionStoreContractTest(t, store)
}
