package commands

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
)

// CreateOrderCommandHandler assigns the next P#### identifier and appends the
// order as a new row.
//
// Two sessions creating orders at the same moment can compute the same
// identifier; the store has no uniqueness check to stop it.
type CreateOrderCommandHandler struct {
	repo   OrderRepository
	clock  clockwork.Clock
	logger *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler that stamps Hora_Registro
// with clock.
func NewCreateOrderCommandHandler(repo OrderRepository, clock clockwork.Clock, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		repo:   repo,
		clock:  clock,
		logger: logger.With("component", "create_order"),
	}
}

// Handle returns the identifier given to the new order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderID{}, err
	}

	snapshot, err := h.repo.Load(ctx)
	if err != nil {
		return kernel.OrderID{}, err
	}

	id := services.NextOrderID(snapshot.IDs())
	o, err := order.NewOrder(id, cmd.Intake(), h.clock.Now())
	if err != nil {
		return kernel.OrderID{}, err
	}

	if err = h.repo.Append(ctx, snapshot.Handle, o); err != nil {
		return kernel.OrderID{}, err
	}

	h.logger.InfoContext(ctx, "order created", "order_id", id.String(), "shipment_type", o.ShipmentType().String())
	return id, nil
}
