package commands

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrUpdateOrderDetailsCommandIsNotConstructed = errors.New(
		"UpdateOrderDetailsCommand must be created via NewUpdateOrderDetailsCommand constructor",
	)
	ErrNothingToUpdate = errs.NewValueIsRequiredError("at least one field to update")
)

// OrderDetails holds the editable fields of an order. nil means unchanged.
type OrderDetails struct {
	Notes                   *string
	Assignee                *string
	DeliveryDate            *time.Time
	Shift                   *order.Shift
	FulfillmentModification *string
}

func (d OrderDetails) isEmpty() bool {
	return d.Notes == nil && d.Assignee == nil && d.DeliveryDate == nil &&
		d.Shift == nil && d.FulfillmentModification == nil
}

// UpdateOrderDetailsCommand edits the free-form fields of an order without
// touching its status.
type UpdateOrderDetailsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	details OrderDetails

	guard guard.ConstructorGuard
}

func NewUpdateOrderDetailsCommand(orderID kernel.OrderID, details OrderDetails) (UpdateOrderDetailsCommand, error) {
	cmd := UpdateOrderDetailsCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDetails(details),
	); err != nil {
		return UpdateOrderDetailsCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailsCommandIsNotConstructed)
}

func (c UpdateOrderDetailsCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c UpdateOrderDetailsCommand) Details() OrderDetails {
	return c.details
}

func (c *UpdateOrderDetailsCommand) setOrderID(id kernel.OrderID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError("order id")
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderDetailsCommand) setDetails(d OrderDetails) error {
	if d.isEmpty() {
		return ErrNothingToUpdate
	}
	c.details = d
	return nil
}
