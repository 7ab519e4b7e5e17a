package commands

import (
	"errors"
	"slices"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a new order from the intake form.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(order.Intake{
//	    ClientName:   "Ferretería Norte",
//	    Salesperson:  "ANA",
//	    ShipmentType: order.Local,
//	    Shift:        order.MorningLocal,
//	})
//	if err != nil {
//	    return err
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	intake order.Intake

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the intake values that do not need the
// stored data.
func NewCreateOrderCommand(intake order.Intake) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setClientName(intake.ClientName),
		cmd.setShipment(intake.ShipmentType, intake.Shift),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.intake.InvoiceFolio = intake.InvoiceFolio
	cmd.intake.Salesperson = intake.Salesperson
	cmd.intake.Comment = intake.Comment
	cmd.intake.PaymentStatus = intake.PaymentStatus
	cmd.intake.Attachments = slices.Clone(intake.Attachments)
	if intake.DeliveryDate != nil {
		d := *intake.DeliveryDate
		cmd.intake.DeliveryDate = &d
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Intake returns the captured values.
func (c CreateOrderCommand) Intake() order.Intake {
	intake := c.intake
	intake.Attachments = slices.Clone(c.intake.Attachments)
	return intake
}

func (c *CreateOrderCommand) setClientName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("client name")
	}
	c.intake.ClientName = name
	return nil
}

func (c *CreateOrderCommand) setShipment(t order.ShipmentType, s order.Shift) error {
	if !t.IsKnown() {
		return errs.NewValueIsRequiredError("shipment type")
	}
	if t != order.Local && s != order.NotApplicable {
		return order.ErrShiftRequiresLocalShipment
	}
	c.intake.ShipmentType = t
	c.intake.Shift = s
	return nil
}
