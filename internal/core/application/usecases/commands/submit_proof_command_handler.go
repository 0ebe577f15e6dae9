package commands

import (
	"context"
	"errors"
	"time"

	"deliverytrack/internal/core/domain/model/order"
	"deliverytrack/internal/core/ports"
	"deliverytrack/internal/pkg/errs"
)

// ErrProofStoreFailed indicates the proof image could not be stored. The
// order record is untouched and the submission is safely retryable.
var ErrProofStoreFailed = errors.New("proof store failed")

// SubmitProofCommandHandler finalizes a delivery: it stores the proof image,
// then attaches the resulting URL and moves the order into Delivered
// Successful as one transactional unit. This handler is the only path into
// the terminal success status.
//
// Ordering matters here. The image upload may be slow, so it runs before the
// transaction and holds no lock on the order; the record is mutated only
// after the store confirms success. A store failure surfaces as
// ErrProofStoreFailed with no record change. Like transitions, the final
// write retries once on a version conflict; if a concurrent submission
// already delivered the order, the retry fails with a terminal-state
// violation and nothing is overwritten.
type SubmitProofCommandHandler struct {
	uowFactory OrderUoWFactory
	proofStore ports.ProofStore
	now        func() time.Time
}

// NewSubmitProofCommandHandler creates a handler for proof submissions.
func NewSubmitProofCommandHandler(uowFactory OrderUoWFactory, proofStore ports.ProofStore) SubmitProofCommandHandler {
	return SubmitProofCommandHandler{
		uowFactory: uowFactory,
		proofStore: proofStore,
		now:        time.Now,
	}
}

// NewSubmitProofCommandHandlerWithClock creates a handler with an injected
// clock for deterministic timestamps in tests.
func NewSubmitProofCommandHandlerWithClock(
	uowFactory OrderUoWFactory,
	proofStore ports.ProofStore,
	now func() time.Time,
) SubmitProofCommandHandler {
	return SubmitProofCommandHandler{
		uowFactory: uowFactory,
		proofStore: proofStore,
		now:        now,
	}
}

// Handle processes the proof submission and returns the delivered order
// snapshot.
func (h SubmitProofCommandHandler) Handle(ctx context.Context, command SubmitProofCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	// Cheap precondition read before paying for the upload. The repository
	// outside a transaction reads directly from the main connection.
	snapshot, err := h.uowFactory.Create().OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}
	if snapshot.AgentStatus().IsTerminal() {
		return nil, &order.TerminalStateViolationError{Current: snapshot.AgentStatus()}
	}

	proofURL, err := h.proofStore.Store(ctx, command.Image())
	if err != nil {
		return nil, errors.Join(ErrProofStoreFailed, err)
	}

	updated, err := h.complete(ctx, command, proofURL)
	if errors.Is(err, errs.ErrVersionConflict) {
		updated, err = h.complete(ctx, command, proofURL)
	}

	return updated, err
}

// complete performs one transactional attach-proof-and-deliver attempt.
func (h SubmitProofCommandHandler) complete(ctx context.Context, command SubmitProofCommand, proofURL string) (*order.Order, error) {
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

	if err = aggregate.CompleteDelivery(proofURL, command.Note(), h.now()); err != nil {
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
