// Package ports defines the contracts between the core and its external
// collaborators: persistence, proof storage, and agent authentication.
// These interfaces establish the dependency-inversion boundary and keep the
// application layer testable.
package ports

import (
	"context"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update is a compare-and-swap keyed by the version the aggregate carried
// when it was read: if the stored version no longer matches, Update returns
// an error wrapping errs.ErrVersionConflict and writes nothing. This gives
// each transition a serializable read-modify-write without cross-order
// locking; orders are independent.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, incrementing
	// its version. Fails with errs.ErrVersionConflict when a concurrent
	// writer got there first, and errs.ErrObjectNotFound when the order
	// does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
