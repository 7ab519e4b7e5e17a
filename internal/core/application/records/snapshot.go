package records

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// Snapshot is one normalized load. Row indexes are only valid together with
// Handle; load a new snapshot after every write.
type Snapshot struct {
	Handle ports.SourceHandle
	Orders []*order.Order
}

// Load reads the full table and normalizes it.
func Load(ctx context.Context, store ports.RecordStore, normalizer Normalizer) (Snapshot, error) {
	table, err := store.LoadAll(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load records: %w", err)
	}
	return Snapshot{Handle: table.Handle, Orders: normalizer.NormalizeTable(table)}, nil
}

// Find returns the order with the given id.
func (s Snapshot) Find(id kernel.OrderID) (*order.Order, error) {
	for _, o := range s.Orders {
		if o.ID().IsEqual(id) {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order", id.String())
}

// IDs returns every identifier in the snapshot.
func (s Snapshot) IDs() []kernel.OrderID {
	ids := make([]kernel.OrderID, 0, len(s.Orders))
	for _, o := range s.Orders {
		if !o.ID().IsZero() {
			ids = append(ids, o.ID())
		}
	}
	return ids
}
