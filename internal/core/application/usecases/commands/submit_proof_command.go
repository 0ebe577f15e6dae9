package commands

import (
	"errors"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/pkg/errs"
	"deliverytrack/internal/pkg/guard"
)

var ErrSubmitProofCommandIsNotConstructed = errors.New(
	"SubmitProofCommand must be created via NewSubmitProofCommand constructor",
)

// SubmitProofCommand requests completing a delivery with proof evidence.
// The image bytes are mandatory; the customer confirmation note is optional
// free text.
type SubmitProofCommand struct {
	orderID kernel.UUID
	image   []byte
	note    string

	guard guard.ConstructorGuard
}

// NewSubmitProofCommand creates a validated proof submission request.
// Empty image bytes are rejected here, before anything is stored.
func NewSubmitProofCommand(orderID kernel.UUID, image []byte, note string) (SubmitProofCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SubmitProofCommand{}, err
	}

	if len(image) == 0 {
		return SubmitProofCommand{}, errs.NewValueIsRequiredError("proofImage")
	}

	return SubmitProofCommand{
		orderID: orderID,
		image:   image,
		note:    note,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the target order's identifier.
func (c SubmitProofCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Image returns the raw proof image bytes.
func (c SubmitProofCommand) Image() []byte {
	return c.image
}

// Note returns the optional customer confirmation note.
func (c SubmitProofCommand) Note() string {
	return c.note
}

// Validate ensures the command was created through the constructor.
func (c SubmitProofCommand) Validate() error {
	return c.guard.Validate(ErrSubmitProofCommandIsNotConstructed)
}
