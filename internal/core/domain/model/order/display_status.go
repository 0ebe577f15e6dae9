package order

import (
	"fmt"

	"deliverytrack/internal/pkg/errs"
)

// DisplayStatus is the customer/ops-facing mirror of the agent status. It is
// a deterministic function of Status (see DisplayStatusOf) and is updated in
// lockstep on every transition; it never carries independent state.
//
// Two values exist only for downstream processes and are never produced by
// this core's transitions: DisplayWaitingForPickup (reserved) and
// DisplayCompleted (externally settable after delivery).
type DisplayStatus int

const (
	// DisplayUnknown represents an invalid or undefined display status.
	DisplayUnknown DisplayStatus = iota

	// DisplayWaitingForAcceptance mirrors WaitingForAcceptance.
	DisplayWaitingForAcceptance

	// DisplayWaitingForPickup is reserved and not reachable from this core.
	DisplayWaitingForPickup

	// DisplayReadyForPickup mirrors ReadyForPickup.
	DisplayReadyForPickup

	// DisplayPickedUp mirrors PickedUp.
	DisplayPickedUp

	// DisplayOutForDelivery mirrors OutForDelivery.
	DisplayOutForDelivery

	// DisplayReachedAtDestination mirrors ReachedAtDestination.
	DisplayReachedAtDestination

	// DisplayUploadProof mirrors UploadProof.
	DisplayUploadProof

	// DisplayDeliveredSuccessful mirrors DeliveredSuccessful.
	DisplayDeliveredSuccessful

	// DisplayDeclinedByAgent is the customer-facing label for Declined.
	DisplayDeclinedByAgent

	// DisplayCompleted is set by downstream processes after delivery;
	// this core never produces it.
	DisplayCompleted
)

// getDisplayStatusStrings returns a map of DisplayStatus values to their labels.
func getDisplayStatusStrings() map[DisplayStatus]string {
	return map[DisplayStatus]string{
		DisplayUnknown:              "Unknown",
		DisplayWaitingForAcceptance: "Waiting for Acceptance",
		DisplayWaitingForPickup:     "Waiting for Pickup",
		DisplayReadyForPickup:       "Ready for Pickup",
		DisplayPickedUp:             "Picked Up",
		DisplayOutForDelivery:       "Out for Delivery",
		DisplayReachedAtDestination: "Reached at Destination",
		DisplayUploadProof:          "Upload Proof",
		DisplayDeliveredSuccessful:  "Delivered Successful",
		DisplayDeclinedByAgent:      "Declined by Agent",
		DisplayCompleted:            "Completed",
	}
}

// DisplayStatusOf derives the customer-facing status from an agent status.
// The mapping is total over valid agent statuses: identity for every step of
// the canonical chain, with Declined relabeled as Declined by Agent.
func DisplayStatusOf(s Status) DisplayStatus {
	//nolint:exhaustive // Unknown falls through to DisplayUnknown
	switch s {
	case WaitingForAcceptance:
		return DisplayWaitingForAcceptance
	case ReadyForPickup:
		return DisplayReadyForPickup
	case PickedUp:
		return DisplayPickedUp
	case OutForDelivery:
		return DisplayOutForDelivery
	case ReachedAtDestination:
		return DisplayReachedAtDestination
	case UploadProof:
		return DisplayUploadProof
	case DeliveredSuccessful:
		return DisplayDeliveredSuccessful
	case Declined:
		return DisplayDeclinedByAgent
	}
	return DisplayUnknown
}

// Validate checks that the DisplayStatus value belongs to the closed set.
func (d DisplayStatus) Validate() error {
	if d == DisplayUnknown {
		return errs.NewValueIsInvalidErrorWithCause("displayStatus", fmt.Errorf("%d is not a valid display status", d))
	}
	if _, ok := getDisplayStatusStrings()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("displayStatus", fmt.Errorf("%d is not a valid display status", d))
	}
	return nil
}

// String returns the customer-facing label. Implements fmt.Stringer.
func (d DisplayStatus) String() string {
	if str, ok := getDisplayStatusStrings()[d]; ok {
		return str
	}
	return "Unknown"
}
