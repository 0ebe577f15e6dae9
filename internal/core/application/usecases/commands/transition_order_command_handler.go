package commands

import (
	"context"
	"errors"
	"time"

	"deliverytrack/internal/core/domain/model/order"
	"deliverytrack/internal/pkg/errs"
)

// TransitionOrderCommandHandler orchestrates status transitions for delivery
// orders. It applies the order state machine inside a unit of work so each
// transition is a single serializable read-modify-write.
//
// A failed compare-and-swap (a concurrent writer updated the order between
// read and write) is retried exactly once: the order is re-read and the
// state machine re-evaluates the request against the fresh status, naturally
// rejecting duplicate or stale transitions. A second conflict is surfaced to
// the caller.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(uowFactory)
//	cmd, _ := NewTransitionOrderCommand(orderID, order.ReadyForPickup, "")
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order
//	case errors.Is(err, order.ErrOutOfSequence):
//	    // step skipped ahead
//	case errors.Is(err, order.ErrTerminalStateViolation):
//	    // order already delivered or declined
//	}
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// NewTransitionOrderCommandHandlerWithClock creates a handler with an
// injected clock for deterministic timestamps in tests.
func NewTransitionOrderCommandHandlerWithClock(uowFactory OrderUoWFactory, now func() time.Time) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the transition command and returns the updated order
// snapshot. On a version conflict the attempt is repeated once against the
// re-read state before the conflict is surfaced.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, command TransitionOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	updated, err := h.apply(ctx, command)
	if errors.Is(err, errs.ErrVersionConflict) {
		updated, err = h.apply(ctx, command)
	}

	return updated, err
}

// apply performs one transactional read-validate-write attempt.
func (h TransitionOrderCommandHandler) apply(ctx context.Context, command TransitionOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Transition(command.Status(), command.ETA(), h.now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
