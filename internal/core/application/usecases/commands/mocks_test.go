package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"orderdesk/internal/core/application/records"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/logger"
)

var (
	now    = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	handle = ports.SourceHandle{Table: "datos_pedidos", Headers: records.Columns()}
	nop    = logger.Nop()
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Load(ctx context.Context) (records.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(records.Snapshot), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, h ports.SourceHandle, change records.Change) error {
	args := m.Called(ctx, h, change)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveAll(ctx context.Context, h ports.SourceHandle, changes []records.Change) error {
	args := m.Called(ctx, h, changes)
	return args.Error(0)
}

func (m *MockOrderRepository) Append(ctx context.Context, h ports.SourceHandle, o *order.Order) error {
	args := m.Called(ctx, h, o)
	return args.Error(0)
}

type MockAttachmentStore struct{ mock.Mock }

func (m *MockAttachmentStore) Store(ctx context.Context, key string, blob ports.Blob) (string, error) {
	args := m.Called(ctx, key, blob)
	return args.String(0), args.Error(1)
}

func (m *MockAttachmentStore) ListUnderPrefix(ctx context.Context, prefix string) ([]ports.StoredObject, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).([]ports.StoredObject), args.Error(1)
}

func (m *MockAttachmentStore) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}

func orderID(raw string) kernel.OrderID {
	id, _ := kernel.OrderIDFromString(raw)
	return id
}

func stored(id string, status order.Status, assignee string, row int) *order.Order {
	return order.RestoreOrder(order.Snapshot{
		ID:             orderID(id),
		ClientName:     "Cliente " + id,
		ShipmentType:   order.Local,
		Shift:          order.MorningLocal,
		Status:         status,
		Assignee:       assignee,
		SourceRowIndex: row,
	})
}

func snapshotOf(orders ...*order.Order) records.Snapshot {
	return records.Snapshot{Handle: handle, Orders: orders}
}
