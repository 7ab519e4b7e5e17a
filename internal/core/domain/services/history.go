package services

import (
	"slices"
	"time"

	"orderdesk/internal/core/domain/model/order"
)

// HistoryPolicy selects which Completed orders the history queue shows.
// A zero Window means no date restriction; a zero Cap means no limit.
type HistoryPolicy struct {
	Window time.Duration
	Cap    int
}

// Apply returns the Completed orders inside the window, most recently
// completed first, truncated to Cap. With a window set, orders missing
// completed_at are excluded; without one they are listed last.
func (p HistoryPolicy) Apply(orders []*order.Order, now time.Time) []*order.Order {
	var since time.Time
	if p.Window > 0 {
		since = now.Add(-p.Window)
	}

	out := Filter(orders, func(o *order.Order) bool {
		if o.Status() != order.Completed {
			return false
		}
		if p.Window <= 0 {
			return true
		}
		at := o.CompletedAt()
		return at != nil && !at.Before(since)
	})

	slices.SortStableFunc(out, func(a, b *order.Order) int {
		x, y := a.CompletedAt(), b.CompletedAt()
		switch {
		case x == nil && y == nil:
			return 0
		case x == nil:
			return 1
		case y == nil:
			return -1
		default:
			return y.Compare(*x)
		}
	})

	if p.Cap > 0 && len(out) > p.Cap {
		out = out[:p.Cap]
	}
	return out
}
