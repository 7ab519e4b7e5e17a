package queries_test

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

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Load(ctx context.Context) (records.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(records.Snapshot), args.Error(1)
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

func day(d int) *time.Time {
	t := time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func restore(s order.Snapshot) *order.Order {
	if s.ClientName == "" {
		s.ClientName = "Cliente " + s.ID.String()
	}
	if s.Status == order.Unknown {
		s.Status = order.Pending
	}
	return order.RestoreOrder(s)
}

func snapshotOf(orders ...*order.Order) records.Snapshot {
	return records.Snapshot{Handle: handle, Orders: orders}
}
