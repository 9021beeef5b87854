package ports_test

import (
	"context"
	"testing"

	"github.com/aretw0/enfa/pkg/domain"
	"github.com/aretw0/enfa/pkg/ports/tests"
)

// MockStore is a minimal map-backed ConversionStore used to exercise the contract suite itself.
type MockStore struct {
	data map[string]*domain.Conversion
}

func NewMockStore() *MockStore {
	return &MockStore{data: make(map[string]*domain.Conversion)}
}

func (m *MockStore) Save(ctx context.Context, id string, conv *domain.Conversion) error {
	m.data[id] = conv.Clone()
	return nil
}

func (m *MockStore) Load(ctx context.Context, id string) (*domain.Conversion, error) {
	conv, ok := m.data[id]
	if !ok {
		return nil, domain.ErrConversionNotFound
	}
	return conv.Clone(), nil
}

func (m *MockStore) Delete(ctx context.Context, id string) error {
	delete(m.data, id)
	return nil
}

func (m *MockStore) List(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(m.data))
	for id := range m.data {
		ids = append(ids, id)
	}
	return ids, nil
}

func TestConversionStore_Contract(t *testing.T) {
	tests.ConversionStoreContractTest(t, NewMockStore())
}
