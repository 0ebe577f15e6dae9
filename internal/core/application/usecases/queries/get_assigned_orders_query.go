// Package queries contains the read-side operations of the delivery tracking
// core. Query handlers read the orders table directly and never mutate state;
// pagination is a presentation concern layered on top by callers.
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

var ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
	"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
)

// View selects which slice of an agent's worklist to return.
type View string

const (
	// ViewActive returns orders still in progress (no terminal status).
	ViewActive View = "active"

	// ViewHistory returns successfully delivered orders, newest first.
	ViewHistory View = "history"

	// ViewDeclined returns orders the agent refused.
	ViewDeclined View = "declined"
)

// Validate checks that the view is one of the recognized values.
func (v View) Validate() error {
	switch v {
	case ViewActive, ViewHistory, ViewDeclined:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("view", fmt.Errorf("%q is not a recognized view", string(v)))
}

// GetAssignedOrdersQuery computes a delivery agent's worklist. The optional
// date range applies to the history view only and is inclusive on both ends;
// it filters on the delivery timestamp, falling back to the last-modified
// time for legacy rows that predate the deliveredAt column.
//
// Example:
//
//	query, err := NewGetAssignedOrdersQuery(agentID, ViewHistory, &from, &to)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetAssignedOrdersQuery struct {
	agentID  kernel.UUID
	view     View
	fromDate *time.Time
	toDate   *time.Time

	guard guard.ConstructorGuard
}

// NewGetAssignedOrdersQuery creates a validated worklist query.
// When both ends of the date range are present, from must not be after to.
func NewGetAssignedOrdersQuery(agentID kernel.UUID, view View, fromDate, toDate *time.Time) (GetAssignedOrdersQuery, error) {
	if err := errors.Join(agentID.Validate(), view.Validate()); err != nil {
		return GetAssignedOrdersQuery{}, err
	}

	if fromDate != nil && toDate != nil && fromDate.After(*toDate) {
		return GetAssignedOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"dateRange",
			fmt.Errorf("fromDate %s is after toDate %s", fromDate, toDate),
		)
	}

	return GetAssignedOrdersQuery{
		agentID:  agentID,
		view:     view,
		fromDate: fromDate,
		toDate:   toDate,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// AgentID returns the agent whose worklist is requested.
func (q GetAssignedOrdersQuery) AgentID() kernel.UUID {
	return q.agentID
}

// View returns the requested worklist slice.
func (q GetAssignedOrdersQuery) View() View {
	return q.view
}

// FromDate returns the inclusive lower bound of the history range, if any.
func (q GetAssignedOrdersQuery) FromDate() *time.Time {
	return q.fromDate
}

// ToDate returns the inclusive upper bound of the history range, if any.
func (q GetAssignedOrdersQuery) ToDate() *time.Time {
	return q.toDate
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}

// GetAssignedOrdersQueryResponse is one order in the agent's worklist.
type GetAssignedOrdersQueryResponse struct {
	ID                       kernel.UUID
	AgentStatus              order.Status
	DisplayStatus            order.DisplayStatus
	EstimatedDeliveryTime    string
	OrderAcceptedAt          *time.Time
	DeliveredAt              *time.Time
	DeliveryProofImage       string
	CustomerConfirmationNote string
}
