package order

import (
	"errors"
	"fmt"

	"deliverytrack/internal/pkg/errs"
)

// Status represents the agent-facing progress of a delivery order.
// It implements a state machine over the canonical step sequence:
//
//	Waiting for Acceptance ──> Ready for Pickup ──> Picked Up ──> Out for Delivery
//	        │                   ──> Reached at Destination ──> Upload Proof
//	        └──> Declined           ──> Delivered Successful
//
// Steps may be repeated or re-confirmed, but a transition may never skip
// ahead by more than one step. Declined is reachable only from Waiting for
// Acceptance. Delivered Successful and Declined are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// WaitingForAcceptance is the initial status assigned when the order is
	// handed to a delivery agent. The agent either accepts or declines.
	WaitingForAcceptance

	// ReadyForPickup indicates the agent accepted the order.
	ReadyForPickup

	// PickedUp indicates the agent collected the order.
	PickedUp

	// OutForDelivery indicates the agent is en route to the customer.
	// An estimated delivery time may be attached at this step.
	OutForDelivery

	// ReachedAtDestination indicates the agent arrived at the delivery address.
	ReachedAtDestination

	// UploadProof indicates the agent is capturing proof of delivery.
	UploadProof

	// DeliveredSuccessful is the terminal success status. It is reachable
	// only through proof submission, never by a direct status request.
	DeliveredSuccessful

	// Declined is the terminal status for an order the agent refused.
	Declined
)

var (
	// ErrOutOfSequence is the sentinel for transitions that skip ahead of the
	// canonical step order.
	ErrOutOfSequence = errors.New("status transition is out of sequence")

	// ErrTerminalStateViolation is the sentinel for any transition attempted
	// from a terminal status.
	ErrTerminalStateViolation = errors.New("order is in a terminal state")
)

// OutOfSequenceError reports a transition request that skips steps.
type OutOfSequenceError struct {
	From Status
	To   Status
}

func (e *OutOfSequenceError) Error() string {
	return fmt.Sprintf("%s: cannot move from %s to %s", ErrOutOfSequence, e.From, e.To)
}

func (e *OutOfSequenceError) Unwrap() error {
	return ErrOutOfSequence
}

// TerminalStateViolationError reports a transition attempted from a terminal status.
type TerminalStateViolationError struct {
	Current Status
}

func (e *TerminalStateViolationError) Error() string {
	return fmt.Sprintf("%s: %s accepts no further transitions", ErrTerminalStateViolation, e.Current)
}

func (e *TerminalStateViolationError) Unwrap() error {
	return ErrTerminalStateViolation
}

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "Unknown",
		WaitingForAcceptance: "Waiting for Acceptance",
		ReadyForPickup:       "Ready for Pickup",
		PickedUp:             "Picked Up",
		OutForDelivery:       "Out for Delivery",
		ReachedAtDestination: "Reached at Destination",
		UploadProof:          "Upload Proof",
		DeliveredSuccessful:  "Delivered Successful",
		Declined:             "Declined",
	}
}

// getValidStatusStrings returns only valid Status values, excluding Unknown.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		WaitingForAcceptance: "Waiting for Acceptance",
		ReadyForPickup:       "Ready for Pickup",
		PickedUp:             "Picked Up",
		OutForDelivery:       "Out for Delivery",
		ReachedAtDestination: "Reached at Destination",
		UploadProof:          "Upload Proof",
		DeliveredSuccessful:  "Delivered Successful",
		Declined:             "Declined",
	}
}

// chainIndex holds the ordinal of each status in the canonical forward chain.
// Declined branches off the chain and has no ordinal.
func chainIndex() map[Status]int {
	return map[Status]int{
		WaitingForAcceptance: 0,
		ReadyForPickup:       1,
		PickedUp:             2,
		OutForDelivery:       3,
		ReachedAtDestination: 4,
		UploadProof:          5,
		DeliveredSuccessful:  6,
	}
}

// StatusFromString parses the agent-facing status literal as it appears on
// the wire (e.g. "Out for Delivery"). Returns a ValueIsInvalidError for any
// string outside the closed set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized status", s),
	)
}

// Validate checks that the Status value belongs to the closed set.
// Unknown (0) and out-of-range values are invalid and are never stored.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable status literal.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == DeliveredSuccessful || s == Declined
}

// CanTransition checks whether a transition from s to requested is legal.
//
// Rules:
//   - requested must be a valid status
//   - terminal statuses reject everything (TerminalStateViolationError)
//   - Declined is reachable only from WaitingForAcceptance
//   - otherwise the requested step's chain ordinal must not exceed the
//     current ordinal by more than one (OutOfSequenceError)
//
// Returns nil when the transition is allowed.
func (s Status) CanTransition(requested Status) error {
	if err := requested.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return &TerminalStateViolationError{Current: s}
	}

	if requested == Declined {
		if s == WaitingForAcceptance {
			return nil
		}
		return &OutOfSequenceError{From: s, To: requested}
	}

	indexes := chainIndex()
	if indexes[requested] > indexes[s]+1 {
		return &OutOfSequenceError{From: s, To: requested}
	}

	return nil
}

// NextAllowed returns the set of statuses legally reachable from s,
// in canonical order. Terminal statuses return an empty set.
func (s Status) NextAllowed() []Status {
	ordered := []Status{
		WaitingForAcceptance,
		ReadyForPickup,
		PickedUp,
		OutForDelivery,
		ReachedAtDestination,
		UploadProof,
		DeliveredSuccessful,
		Declined,
	}

	allowed := make([]Status, 0, len(ordered))
	for _, candidate := range ordered {
		if s.CanTransition(candidate) == nil {
			allowed = append(allowed, candidate)
		}
	}
	return allowed
}
