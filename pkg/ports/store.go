package ports

import (
	"context"

	"github.com/aretw0/enfa/pkg/domain"
)

// ConversionStore defines the interface for keeping conversion results around,
// so that HTTP clients and interactive sessions can fetch them again later.
type ConversionStore interface {
	// Save persists the conversion under the given ID.
	Save(ctx context.Context, id string, conv *domain.Conversion) error

	// Load retrieves the conversion for a given ID.
	// Returns domain.ErrConversionNotFound if it does not exist.
	Load(ctx context.Context, id string) (*domain.Conversion, error)

	// Delete removes the conversion for a given ID.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of stored conversions.
	List(ctx context.Context) ([]string, error)
}
