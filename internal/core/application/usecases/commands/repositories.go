// Package commands contains the business operations that mutate delivery
// orders. Each command follows the same pattern: constructor validation, a
// unit-of-work transaction, and a single serializable read-modify-write
// against the order aggregate.
package commands

import (
	"context"

	"deliverytrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository. Outside an
	// active transaction the repository reads directly; within one it is
	// bound to the transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	// Each command attempt gets a fresh, isolated instance.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
