package services

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// Ordering is a named display order for a queue.
type Ordering int

const (
	// ShipmentPriority sorts by shipment type rank, then delivery date
	// ascending with undated orders last.
	ShipmentPriority Ordering = iota

	// StatusPriority sorts by status rank, then delivery date ascending,
	// then registration time ascending. Undated orders go last at each level.
	StatusPriority
)

func (o Ordering) String() string {
	if o == StatusPriority {
		return "status"
	}
	return "shipment"
}

// ParseOrdering accepts "shipment" or "status".
func ParseOrdering(s string) (Ordering, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shipment":
		return ShipmentPriority, nil
	case "status":
		return StatusPriority, nil
	default:
		return ShipmentPriority, errs.NewValueIsInvalidErrorWithCause("ordering", fmt.Errorf("unknown ordering %q", s))
	}
}

// Sort returns a sorted copy of orders. The sort is stable and the input is
// left untouched.
func (o Ordering) Sort(orders []*order.Order) []*order.Order {
	out := slices.Clone(orders)
	switch o {
	case StatusPriority:
		slices.SortStableFunc(out, func(a, b *order.Order) int {
			return cmp.Or(
				cmp.Compare(a.Status().Rank(), b.Status().Rank()),
				compareOptionalTimes(a.DeliveryDate(), b.DeliveryDate()),
				compareOptionalTimes(a.RegisteredAt(), b.RegisteredAt()),
			)
		})
	default:
		slices.SortStableFunc(out, func(a, b *order.Order) int {
			return cmp.Or(
				cmp.Compare(a.ShipmentType().Rank(), b.ShipmentType().Rank()),
				compareOptionalTimes(a.DeliveryDate(), b.DeliveryDate()),
			)
		})
	}
	return out
}

// compareOptionalTimes orders ascending with nil after every value.
func compareOptionalTimes(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}
