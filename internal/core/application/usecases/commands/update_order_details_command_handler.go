package commands

import (
	"context"
	"log/slog"

	"orderdesk/internal/core/application/records"
	"orderdesk/internal/core/domain/model/order"
)

// UpdateOrderDetailsCommandHandler applies every requested edit to a clone
// and persists them together: one cell write for a single edit, one batch
// otherwise. A rejected edit writes nothing.
type UpdateOrderDetailsCommandHandler struct {
	repo   OrderRepository
	logger *slog.Logger
}

// NewUpdateOrderDetailsCommandHandler creates a handler for free-form edits.
func NewUpdateOrderDetailsCommandHandler(repo OrderRepository, logger *slog.Logger) UpdateOrderDetailsCommandHandler {
	return UpdateOrderDetailsCommandHandler{
		repo:   repo,
		logger: logger.With("component", "update_order_details"),
	}
}

// Handle applies the requested edits. Completed orders are read-only and
// reject every edit.
func (h UpdateOrderDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderDetailsCommand) error {
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
	d := cmd.Details()

	var edits []func() ([]order.Field, error)
	if d.Notes != nil {
		edits = append(edits, func() ([]order.Field, error) { return o.SetNotes(*d.Notes) })
	}
	if d.Assignee != nil {
		edits = append(edits, func() ([]order.Field, error) { return o.AssignTo(*d.Assignee) })
	}
	if d.DeliveryDate != nil {
		edits = append(edits, func() ([]order.Field, error) { return o.Reschedule(d.DeliveryDate) })
	}
	if d.Shift != nil {
		edits = append(edits, func() ([]order.Field, error) { return o.ChangeShift(*d.Shift) })
	}
	if d.FulfillmentModification != nil {
		edits = append(edits, func() ([]order.Field, error) {
			return o.SetFulfillmentModification(*d.FulfillmentModification)
		})
	}

	var fields []order.Field
	for _, edit := range edits {
		changed, editErr := edit()
		if editErr != nil {
			return editErr
		}
		fields = append(fields, changed...)
	}

	if err = h.repo.Save(ctx, snapshot.Handle, records.Change{Order: o, Fields: fields}); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order details updated", "order_id", o.ID().String(), "fields", len(fields))
	return nil
}
