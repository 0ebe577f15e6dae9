package queries

import (
	"context"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStalledOrdersQueryHandler finds active orders whose last modification
// is older than the query cutoff.
type GetStalledOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStalledOrdersQueryHandler creates a handler for stalled-order queries.
func NewGetStalledOrdersQueryHandler(db *gorm.DB) GetStalledOrdersQueryHandler {
	return GetStalledOrdersQueryHandler{db: db}
}

// Handle returns non-terminal orders untouched since the cutoff, oldest first.
func (h GetStalledOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStalledOrdersQuery,
) ([]GetStalledOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			assigned_agent,
			agent_status,
			updated_at
		FROM orders
		WHERE agent_status NOT IN (?, ?)
		  AND updated_at < ?
		ORDER BY updated_at
	`, order.DeliveredSuccessful, order.Declined, query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stalled := make([]GetStalledOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetStalledOrdersQueryResponse
		var id, agentID uuid.UUID
		var agentStatus int

		if err = rows.Scan(&id, &agentID, &agentStatus, &resp.LastChangedAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		assignedAgent, idErr := kernel.UUIDFromBytes(agentID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = orderID
		resp.AssignedAgent = assignedAgent
		resp.AgentStatus = order.Status(agentStatus)
		stalled = append(stalled, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stalled, nil
}
