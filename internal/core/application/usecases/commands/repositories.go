// Package commands contains the operations that change orders.
// Every command follows the same flow: validate, load a fresh snapshot, apply
// the domain mutation to a clone, persist exactly the reported fields.
package commands

import (
	"context"

	"orderdesk/internal/core/application/records"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// OrderRepository loads snapshots and persists changes. records.OrderRepository
// is the production implementation.
type OrderRepository interface {
	Load(ctx context.Context) (records.Snapshot, error)
	Save(ctx context.Context, handle ports.SourceHandle, change records.Change) error
	SaveAll(ctx context.Context, handle ports.SourceHandle, changes []records.Change) error
	Append(ctx context.Context, handle ports.SourceHandle, o *order.Order) error
}
