package services_test

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

var now = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

type fixture struct {
	id          string
	shipment    order.ShipmentType
	shift       order.Shift
	status      order.Status
	delivery    *time.Time
	registered  *time.Time
	started     *time.Time
	completed   *time.Time
	salesperson string
}

func build(f fixture) *order.Order {
	id, _ := kernel.OrderIDFromString(f.id)
	status := f.status
	if status == order.Unknown {
		status = order.Pending
	}
	return order.RestoreOrder(order.Snapshot{
		ID:                  id,
		ClientName:          "cliente " + f.id,
		ShipmentType:        f.shipment,
		Shift:               f.shift,
		Status:              status,
		DeliveryDate:        f.delivery,
		RegisteredAt:        f.registered,
		ProcessingStartedAt: f.started,
		CompletedAt:         f.completed,
		Salesperson:         f.salesperson,
	})
}

func day(offset int) *time.Time {
	d := time.Date(2025, 3, 14+offset, 0, 0, 0, 0, time.UTC)
	return &d
}

func at(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func ids(orders []*order.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.ID().String()
	}
	return out
}
