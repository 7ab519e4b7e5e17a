package records

import (
	"context"
	"fmt"
	"log/slog"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// Change is one mutated order and the fields the mutation reported.
type Change struct {
	Order  *order.Order
	Fields []order.Field
}

// OrderRepository reads and writes orders through a RecordStore.
//
// A single-field change is written with UpdateField; anything larger goes
// out as one BatchUpdateFields call so a failure applies nothing.
type OrderRepository struct {
	store      ports.RecordStore
	normalizer Normalizer
	encoder    Encoder
	logger     *slog.Logger
}

// NewOrderRepository creates a repository whose dates use codec.
func NewOrderRepository(store ports.RecordStore, codec TimeCodec, logger *slog.Logger) *OrderRepository {
	return &OrderRepository{
		store:      store,
		normalizer: NewNormalizer(codec),
		encoder:    NewEncoder(codec),
		logger:     logger.With("component", "order_repository"),
	}
}

// Load reads a fresh snapshot.
func (r *OrderRepository) Load(ctx context.Context) (Snapshot, error) {
	return Load(ctx, r.store, r.normalizer)
}

// Save persists one change.
func (r *OrderRepository) Save(ctx context.Context, handle ports.SourceHandle, change Change) error {
	return r.SaveAll(ctx, handle, []Change{change})
}

// SaveAll persists every change in one request.
func (r *OrderRepository) SaveAll(ctx context.Context, handle ports.SourceHandle, changes []Change) error {
	var updates []ports.FieldUpdate
	for _, c := range changes {
		updates = append(updates, r.encoder.Updates(handle, c.Order, c.Fields)...)
	}

	switch len(updates) {
	case 0:
		return nil
	case 1:
		if err := r.store.UpdateField(ctx, handle, updates[0]); err != nil {
			r.logger.ErrorContext(ctx, "field update failed",
				"order_id", changes[0].Order.ID().String(),
				"row", updates[0].RowIndex,
				"column", updates[0].Column,
				"error", err,
			)
			return fmt.Errorf("update order %s: %w", changes[0].Order.ID(), err)
		}
	default:
		if err := r.store.BatchUpdateFields(ctx, handle, updates); err != nil {
			ids := make([]string, 0, len(changes))
			for _, c := range changes {
				ids = append(ids, c.Order.ID().String())
			}
			r.logger.ErrorContext(ctx, "batch update failed",
				"order_ids", ids,
				"cells", len(updates),
				"error", err,
			)
			return fmt.Errorf("update %d order(s): %w", len(changes), err)
		}
	}
	return nil
}

// Append writes a new order as the last row.
func (r *OrderRepository) Append(ctx context.Context, handle ports.SourceHandle, o *order.Order) error {
	if len(handle.Headers) == 0 {
		handle.Headers = Columns()
	}
	if err := r.store.AppendRow(ctx, handle, r.encoder.Row(handle.Headers, o)); err != nil {
		r.logger.ErrorContext(ctx, "append failed", "order_id", o.ID().String(), "error", err)
		return fmt.Errorf("append order %s: %w", o.ID(), err)
	}
	return nil
}
