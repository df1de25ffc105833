package store

import (
	"context"

	"github.com/dmitrijs2005/bloodbank/internal/client/models"
)

// UpdateFunc receives the current slot contents (nil when absent) and
// returns the new contents. Returning an error aborts the update and leaves
// the slot untouched.
type UpdateFunc func(current []byte) ([]byte, error)

// Store is the local fallback persistence used when the API is unreachable.
type Store interface {
	// Read returns the slot contents for kind, or nil, nil if nothing has
	// been written yet.
	Read(ctx context.Context, kind models.Kind) ([]byte, error)

	// Write replaces the slot contents for kind. The data service changes
	// slots only through Update; Write is for seeding a slot wholesale, as
	// tests and fixtures do.
	Write(ctx context.Context, kind models.Kind, data []byte) error

	// Update atomically reads, transforms and writes back the slot for kind.
	Update(ctx context.Context, kind models.Kind, fn UpdateFunc) error

	// Clear removes every slot.
	Clear(ctx context.Context) error
}
