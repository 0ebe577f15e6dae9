package order

import (
	"errors"
	"fmt"
	"time"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrProofRequired is returned when a direct transition to
	// DeliveredSuccessful is requested without an attached proof image.
	// Completing a delivery goes through CompleteDelivery only.
	ErrProofRequired = errors.New("proof of delivery must be attached before completing the order")
)

// Order is the aggregate root tracking a delivery order from assignment to a
// delivery agent through proof-of-delivery confirmation.
//
// Invariants:
//   - agentStatus is always a member of the closed Status set
//   - displayStatus is derived from agentStatus, never set independently
//   - orderAcceptedAt and deliveredAt are write-once
//   - deliveryProofImage is non-empty exactly when the order is delivered
//   - terminal statuses absorb all further mutation attempts
//
// All fields are private; state changes go through Transition and
// CompleteDelivery, which apply the Status state machine.
type Order struct {
	// id is the unique identifier for the order, assigned at creation.
	id kernel.UUID

	// assignedAgent is the delivery agent owning this order. Set once.
	assignedAgent kernel.UUID

	// agentStatus is the agent-facing progress value.
	agentStatus Status

	// displayStatus is the customer/ops-facing mirror of agentStatus.
	displayStatus DisplayStatus

	// estimatedDeliveryTime is agent-supplied free text attached at the
	// Out for Delivery step. Never cleared automatically.
	estimatedDeliveryTime string

	// orderAcceptedAt is set on the first transition into Ready for Pickup.
	orderAcceptedAt *time.Time

	// deliveredAt is set on the transition into Delivered Successful.
	deliveredAt *time.Time

	// deliveryProofImage is the stored proof reference URL.
	deliveryProofImage string

	// customerConfirmationNote is optional free text accompanying the proof.
	customerConfirmationNote string

	// version is the optimistic concurrency counter maintained by persistence.
	version int64

	// isConstructed ensures the order was created via a constructor.
	isConstructed bool
}

// NewOrder creates an order freshly assigned to a delivery agent, waiting for
// the agent's acceptance. Both identifiers must be valid UUIDs.
func NewOrder(id kernel.UUID, assignedAgent kernel.UUID) (*Order, error) {
	if err := errors.Join(id.Validate(), assignedAgent.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		assignedAgent: assignedAgent,
		agentStatus:   WaitingForAcceptance,
		displayStatus: DisplayStatusOf(WaitingForAcceptance),
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. All invariants are
// re-checked so a corrupted row can never become a live aggregate.
func RestoreOrder(
	id kernel.UUID,
	assignedAgent kernel.UUID,
	agentStatus Status,
	displayStatus DisplayStatus,
	estimatedDeliveryTime string,
	orderAcceptedAt *time.Time,
	deliveredAt *time.Time,
	deliveryProofImage string,
	customerConfirmationNote string,
	version int64,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		assignedAgent.Validate(),
		agentStatus.Validate(),
		displayStatus.Validate(),
	); err != nil {
		return nil, err
	}

	delivered := agentStatus == DeliveredSuccessful
	if delivered != (deliveryProofImage != "") {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"deliveryProofImage",
			fmt.Errorf("proof image must be present exactly when status is %s", DeliveredSuccessful),
		)
	}

	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version",
			fmt.Errorf("%d is not a valid version", version),
		)
	}

	return &Order{
		id:                       id,
		assignedAgent:            assignedAgent,
		agentStatus:              agentStatus,
		displayStatus:            displayStatus,
		estimatedDeliveryTime:    estimatedDeliveryTime,
		orderAcceptedAt:          orderAcceptedAt,
		deliveredAt:              deliveredAt,
		deliveryProofImage:       deliveryProofImage,
		customerConfirmationNote: customerConfirmationNote,
		version:                  version,
		isConstructed:            true,
	}, nil
}

// Validate ensures the Order was created through a constructor.
// Called by repositories before persisting.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// AssignedAgent returns the delivery agent owning this order.
func (o *Order) AssignedAgent() kernel.UUID {
	return o.assignedAgent
}

// AgentStatus returns the agent-facing progress value.
func (o *Order) AgentStatus() Status {
	return o.agentStatus
}

// DisplayStatus returns the customer/ops-facing status.
func (o *Order) DisplayStatus() DisplayStatus {
	return o.displayStatus
}

// EstimatedDeliveryTime returns the agent-supplied ETA text, if any.
func (o *Order) EstimatedDeliveryTime() string {
	return o.estimatedDeliveryTime
}

// OrderAcceptedAt returns the acceptance timestamp, nil before acceptance.
func (o *Order) OrderAcceptedAt() *time.Time {
	return o.orderAcceptedAt
}

// DeliveredAt returns the delivery timestamp, nil before completion.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// DeliveryProofImage returns the stored proof reference URL, empty until the
// order is delivered.
func (o *Order) DeliveryProofImage() string {
	return o.deliveryProofImage
}

// CustomerConfirmationNote returns the note submitted with the proof.
func (o *Order) CustomerConfirmationNote() string {
	return o.customerConfirmationNote
}

// Version returns the optimistic concurrency counter as read from persistence.
func (o *Order) Version() int64 {
	return o.version
}

// RecordWrite advances the optimistic concurrency counter to match the value
// just persisted, keeping the in-memory aggregate usable for a follow-up
// write without a re-read. Called by repositories after a successful update;
// domain code never touches the counter.
func (o *Order) RecordWrite() {
	o.version++
}

// Transition moves the order to the requested status after validating the
// move against the state machine, then applies the step's side effects:
//
//   - Ready for Pickup sets orderAcceptedAt on the first occurrence only
//   - Out for Delivery records eta when one is supplied
//   - Delivered Successful sets deliveredAt once; it is accepted here only
//     when a proof image is already attached (see CompleteDelivery)
//
// The display status is re-derived on every successful transition. On error
// the order is left unchanged.
func (o *Order) Transition(requested Status, eta string, now time.Time) error {
	if err := o.agentStatus.CanTransition(requested); err != nil {
		return err
	}

	// Only once the state machine accepts the move. A terminal order must
	// report the terminal violation, never a missing proof.
	if requested == DeliveredSuccessful && o.deliveryProofImage == "" {
		return ErrProofRequired
	}

	o.agentStatus = requested
	o.displayStatus = DisplayStatusOf(requested)

	if requested == OutForDelivery && eta != "" {
		o.estimatedDeliveryTime = eta
	}

	if requested == ReadyForPickup && o.orderAcceptedAt == nil {
		acceptedAt := now
		o.orderAcceptedAt = &acceptedAt
	}

	if requested == DeliveredSuccessful && o.deliveredAt == nil {
		deliveredAt := now
		o.deliveredAt = &deliveredAt
	}

	return nil
}

// CompleteDelivery attaches the stored proof and moves the order into
// Delivered Successful as one unit. This is the only path into the terminal
// success status. The proof URL must reference an already-stored image.
func (o *Order) CompleteDelivery(proofURL string, note string, now time.Time) error {
	if proofURL == "" {
		return errs.NewValueIsRequiredError("deliveryProofImage")
	}

	if err := o.agentStatus.CanTransition(DeliveredSuccessful); err != nil {
		return err
	}

	o.deliveryProofImage = proofURL
	o.customerConfirmationNote = note

	return o.Transition(DeliveredSuccessful, "", now)
}
