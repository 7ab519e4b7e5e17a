package services

import (
	"slices"
	"time"

	"orderdesk/internal/core/domain/model/order"
)

// Predicate decides whether an order belongs to a queue.
type Predicate func(o *order.Order) bool

// Active keeps orders that are neither Completed nor Cancelled.
func Active() Predicate {
	return func(o *order.Order) bool { return o.IsActive() }
}

// InStatus keeps orders in any of the given statuses.
func InStatus(statuses ...order.Status) Predicate {
	return func(o *order.Order) bool { return slices.Contains(statuses, o.Status()) }
}

// WithShipmentType keeps orders of one shipment type.
func WithShipmentType(t order.ShipmentType) Predicate {
	return func(o *order.Order) bool { return o.ShipmentType() == t }
}

// WithShift keeps Local orders whose effective shift is s.
func WithShift(s order.Shift) Predicate {
	return func(o *order.Order) bool {
		return o.ShipmentType() == order.Local && o.EffectiveShift() == s
	}
}

// DeliveredOn keeps orders due on the calendar day of day.
func DeliveredOn(day time.Time) Predicate {
	want := civilDate(day)
	return func(o *order.Order) bool {
		d := o.DeliveryDate()
		return d != nil && civilDate(*d).Equal(want)
	}
}

// DueBefore keeps dated orders due strictly before the calendar day of day.
func DueBefore(day time.Time) Predicate {
	limit := civilDate(day)
	return func(o *order.Order) bool {
		d := o.DeliveryDate()
		return d != nil && civilDate(*d).Before(limit)
	}
}

// Undated keeps orders without a delivery date.
func Undated() Predicate {
	return func(o *order.Order) bool { return o.DeliveryDate() == nil }
}

// Not negates p.
func Not(p Predicate) Predicate {
	return func(o *order.Order) bool { return !p(o) }
}

// All is the conjunction of ps. All() keeps everything.
func All(ps ...Predicate) Predicate {
	return func(o *order.Order) bool {
		for _, p := range ps {
			if !p(o) {
				return false
			}
		}
		return true
	}
}

// Filter returns the orders matching p in input order.
func Filter(orders []*order.Order, p Predicate) []*order.Order {
	out := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if p(o) {
			out = append(out, o)
		}
	}
	return out
}

// civilDate drops the clock and zone so dates from different locations
// compare by their printed calendar day.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
