/*
Package store defines persistence for investment records.

The engine itself persists nothing: commission records and projections are
recomputed from investments on every call. The only stored entity is the
Investment the surrounding application feeds into the engine.
*/
package store

import (
	"context"
	"errors"

	"github.com/meridian/commission-engine/engine"
)

// ErrNotFound is returned when an investment id does not exist.
var ErrNotFound = errors.New("investment not found")

// InvestmentStore is the persistence boundary the application layer reads
// from before invoking the engine.
type InvestmentStore interface {
	// Create persists an investment. An empty ID is minted by the store.
	Create(ctx context.Context, inv engine.Investment) (engine.Investment, error)

	// Get returns the investment with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (engine.Investment, error)

	// List returns all investments, ordered by id.
	List(ctx context.Context) ([]engine.Investment, error)
}
