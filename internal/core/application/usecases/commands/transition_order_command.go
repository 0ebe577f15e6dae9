package commands

import (
	"errors"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/core/domain/model/order"
	"deliverytrack/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand requests moving an order to a new agent status.
// The optional eta accompanies the Out for Delivery step and is ignored for
// every other status.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.OutForDelivery, "15-20 minutes")
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd)
type TransitionOrderCommand struct {
	orderID kernel.UUID
	status  order.Status
	eta     string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a validated transition request.
// The status must be a member of the closed agent-status set.
func NewTransitionOrderCommand(orderID kernel.UUID, status order.Status, eta string) (TransitionOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), status.Validate()); err != nil {
		return TransitionOrderCommand{}, err
	}

	return TransitionOrderCommand{
		orderID: orderID,
		status:  status,
		eta:     eta,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the target order's identifier.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested agent status.
func (c TransitionOrderCommand) Status() order.Status {
	return c.status
}

// ETA returns the optional estimated delivery time text.
func (c TransitionOrderCommand) ETA() string {
	return c.eta
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}
