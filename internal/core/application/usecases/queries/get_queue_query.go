package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/guard"
)

var ErrGetQueueQueryIsNotConstructed = errors.New(
	"GetQueueQuery must be created via NewGetQueueQuery constructor",
)

// GetQueueQuery asks for the ordered members of one queue, optionally
// narrowed to a shipment type (ShipmentUnknown means all types).
//
// Example:
//
//	query, err := NewGetQueueQuery("due-today", order.Local)
//	orders, err := handler.Handle(ctx, query)
type GetQueueQuery struct {
	queue        services.QueueID
	shipmentType order.ShipmentType

	guard guard.ConstructorGuard
}

func NewGetQueueQuery(queue string, shipmentType order.ShipmentType) (GetQueueQuery, error) {
	id, err := services.ParseQueueID(queue)
	if err != nil {
		return GetQueueQuery{}, err
	}
	return GetQueueQuery{queue: id, shipmentType: shipmentType, guard: guard.NewConstructorGuard()}, nil
}

func (q GetQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetQueueQueryIsNotConstructed)
}

func (q GetQueueQuery) Request() services.QueueRequest {
	return services.QueueRequest{ID: q.queue, ShipmentType: q.shipmentType}
}
