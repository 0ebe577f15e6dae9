// Package order contains the delivery order aggregate and its status state
// machine.
//
// An order is assigned to exactly one delivery agent outside this core. From
// that point the agent drives the order along a fixed step sequence:
//
//	Waiting for Acceptance → Ready for Pickup → Picked Up → Out for Delivery
//	  → Reached at Destination → Upload Proof → Delivered Successful
//
// with a single branch: the agent may decline an order that is still waiting
// for acceptance. Steps may be re-confirmed but never skipped ahead by more
// than one, and the two terminal statuses (Delivered Successful, Declined)
// absorb every further transition attempt.
//
// The aggregate enforces its invariants itself: acceptance and delivery
// timestamps are write-once, the proof image is attached exactly when the
// order completes, and the customer-facing display status is always derived
// from the agent status rather than stored independently.
package order
