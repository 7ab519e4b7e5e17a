package commands

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"orderdesk/internal/core/application/records"
	"orderdesk/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies a status transition and writes the
// status and both derived timestamps in one batch.
//
// Business rules (enforced by the Order aggregate):
//   - The transition must exist in the state model of the workflow
//   - Completing requires an assignee; the store is not touched otherwise
//   - Asking for the current status writes nothing
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(repo, order.Basic, clock, logger)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Completed)
//
//	if err := handler.Handle(ctx, cmd); errs.IsValidation(err) {
//	    // e.g. no assignee yet; nothing was written
//	}
type ChangeOrderStatusCommandHandler struct {
	repo   OrderRepository
	model  order.StateModel
	clock  clockwork.Clock
	logger *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler that validates
// transitions against model and stamps timestamps with clock.
func NewChangeOrderStatusCommandHandler(
	repo OrderRepository,
	model order.StateModel,
	clock clockwork.Clock,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		repo:   repo,
		model:  model,
		clock:  clock,
		logger: logger.With("component", "change_order_status"),
	}
}

// Handle loads a fresh snapshot, applies the transition to a clone of the
// order and persists the reported fields. Validation failures never reach
// the store.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	snapshot, err := h.repo.Load(ctx)
	if err != nil {
		return err
	}

	loaded, err := snapshot.Find(cmd.OrderID())
	if err != nil {
		return err
	}

	o := loaded.Clone()
	from := o.Status()
	fields, err := o.ChangeStatus(cmd.Status(), h.clock.Now(), h.model)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	if err = h.repo.Save(ctx, snapshot.Handle, records.Change{Order: o, Fields: fields}); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order status changed",
		"order_id", o.ID().String(),
		"from", from.String(),
		"to", o.Status().String(),
	)
	return nil
}
