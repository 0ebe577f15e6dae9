package queries

import (
	"errors"
	"fmt"
	"time"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/core/domain/model/order"
	"deliverytrack/internal/pkg/errs"
	"deliverytrack/internal/pkg/guard"
)

var ErrGetStalledOrdersQueryIsNotConstructed = errors.New(
	"GetStalledOrdersQuery must be created via NewGetStalledOrdersQuery constructor",
)

// GetStalledOrdersQuery retrieves active orders that have seen no status
// change since the given cutoff. The delivery monitor job uses it to flag
// orders that look stuck mid-delivery.
type GetStalledOrdersQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetStalledOrdersQuery creates a query for orders untouched since cutoff.
func NewGetStalledOrdersQuery(cutoff time.Time) (GetStalledOrdersQuery, error) {
	if cutoff.IsZero() {
		return GetStalledOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"cutoff",
			fmt.Errorf("cutoff time must be set"),
		)
	}

	return GetStalledOrdersQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Cutoff returns the staleness threshold.
func (q GetStalledOrdersQuery) Cutoff() time.Time {
	return q.cutoff
}

// Validate ensures the query was created through the constructor.
func (q GetStalledOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStalledOrdersQueryIsNotConstructed)
}

// GetStalledOrdersQueryResponse identifies one stalled order.
type GetStalledOrdersQueryResponse struct {
	ID            kernel.UUID
	AssignedAgent kernel.UUID
	AgentStatus   order.Status
	LastChangedAt time.Time
}
