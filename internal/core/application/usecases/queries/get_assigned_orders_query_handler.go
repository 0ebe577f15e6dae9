package queries

import (
	"context"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAssignedOrdersQueryHandler reads a delivery agent's worklist from the
// orders table. Pure read side; the write model is untouched.
type GetAssignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedOrdersQueryHandler creates a handler for worklist queries.
func NewGetAssignedOrdersQueryHandler(db *gorm.DB) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{db: db}
}

// Handle executes the worklist query.
//
//   - active: orders whose agent status is not terminal
//   - declined: orders the agent refused
//   - history: delivered orders, optionally filtered to an inclusive date
//     range on COALESCE(delivered_at, updated_at) and sorted descending on
//     that same timestamp
func (h GetAssignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedOrdersQuery,
) ([]GetAssignedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			agent_status,
			display_status,
			estimated_delivery_time,
			order_accepted_at,
			delivered_at,
			delivery_proof_image,
			customer_confirmation_note
		FROM orders
		WHERE assigned_agent = ?
	`
	args := []any{query.AgentID().Bytes()}

	switch query.View() {
	case ViewActive:
		sql += ` AND agent_status NOT IN (?, ?) ORDER BY id`
		args = append(args, order.DeliveredSuccessful, order.Declined)
	case ViewDeclined:
		sql += ` AND agent_status = ? ORDER BY id`
		args = append(args, order.Declined)
	case ViewHistory:
		sql += ` AND agent_status = ?`
		args = append(args, order.DeliveredSuccessful)
		if from := query.FromDate(); from != nil {
			sql += ` AND COALESCE(delivered_at, updated_at) >= ?`
			args = append(args, *from)
		}
		if to := query.ToDate(); to != nil {
			sql += ` AND COALESCE(delivered_at, updated_at) <= ?`
			args = append(args, *to)
		}
		sql += ` ORDER BY COALESCE(delivered_at, updated_at) DESC`
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetAssignedOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetAssignedOrdersQueryResponse
		var id uuid.UUID
		var agentStatus, displayStatus int

		err = rows.Scan(
			&id,
			&agentStatus,
			&displayStatus,
			&resp.EstimatedDeliveryTime,
			&resp.OrderAcceptedAt,
			&resp.DeliveredAt,
			&resp.DeliveryProofImage,
			&resp.CustomerConfirmationNote,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.AgentStatus = order.Status(agentStatus)
		resp.DisplayStatus = order.DisplayStatus(displayStatus)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
