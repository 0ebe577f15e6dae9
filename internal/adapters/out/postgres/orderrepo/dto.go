// Package orderrepo persists order aggregates with GORM. It maps between the
// private-field domain aggregate and the flat orders table, restoring
// aggregates through RestoreOrder so invariants are re-checked on every read.
package orderrepo

import (
	"time"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row backing one order aggregate. The version
// column drives optimistic locking; updated_at is maintained by GORM and
// doubles as the staleness signal for the delivery monitor.
type OrderDTO struct {
	ID                       uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssignedAgent            uuid.UUID `gorm:"type:uuid;index"`
	AgentStatus              int
	DisplayStatus            int
	EstimatedDeliveryTime    string
	OrderAcceptedAt          *time.Time
	DeliveredAt              *time.Time
	DeliveryProofImage       string
	CustomerConfirmationNote string
	Version                  int64
	UpdatedAt                time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
// The version column keeps the value the aggregate was read with; Update
// bumps it as part of the compare-and-swap.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                       aggregate.ID().Bytes(),
		AssignedAgent:            aggregate.AssignedAgent().Bytes(),
		AgentStatus:              int(aggregate.AgentStatus()),
		DisplayStatus:            int(aggregate.DisplayStatus()),
		EstimatedDeliveryTime:    aggregate.EstimatedDeliveryTime(),
		OrderAcceptedAt:          aggregate.OrderAcceptedAt(),
		DeliveredAt:              aggregate.DeliveredAt(),
		DeliveryProofImage:       aggregate.DeliveryProofImage(),
		CustomerConfirmationNote: aggregate.CustomerConfirmationNote(),
		Version:                  aggregate.Version(),
	}
}

// toDomain reconstructs an order aggregate from its database row.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assignedAgent, err := kernel.UUIDFromBytes(dto.AssignedAgent[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		assignedAgent,
		order.Status(dto.AgentStatus),
		order.DisplayStatus(dto.DisplayStatus),
		dto.EstimatedDeliveryTime,
		dto.OrderAcceptedAt,
		dto.DeliveredAt,
		dto.DeliveryProofImage,
		dto.CustomerConfirmationNote,
		dto.Version,
	)
}
