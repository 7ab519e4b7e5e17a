package services_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataset() []*order.Order {
	return []*order.Order{
		build(fixture{id: "P0001", shipment: order.Local, shift: order.MorningLocal, status: order.Pending, delivery: day(0)}),
		build(fixture{id: "P0002", shipment: order.Local, shift: order.AfternoonLocal, status: order.InProcess, delivery: day(1), started: at(-10 * time.Minute)}),
		build(fixture{id: "P0003", shipment: order.Foreign, shift: order.Saltillo, status: order.Delayed, delivery: day(-2)}),
		build(fixture{id: "P0004", shipment: order.Warranty, status: order.Completed, completed: at(-24 * time.Hour)}),
		build(fixture{id: "P0005", shipment: order.Local, status: order.Cancelled, delivery: day(0)}),
		build(fixture{id: "P0006", shipment: order.Local, shift: order.MorningLocal, status: order.Pending, delivery: day(3)}),
		build(fixture{id: "P0007", shipment: order.Local, shift: order.MorningLocal, status: order.Pending}),
		build(fixture{id: "P0008", shipment: order.Return, status: order.InProcess, delivery: day(0), started: at(-5 * time.Minute)}),
		build(fixture{id: "P0009", shipment: order.Local, status: order.Pending, delivery: day(0)}),
	}
}

func TestClassifier_Queue(t *testing.T) {
	c := services.NewClassifier(services.IntakeProfile(), time.UTC)
	orders := dataset()

	tests := []struct {
		name string
		req  services.QueueRequest
		want []string
	}{
		{"local excludes terminal orders", services.QueueRequest{ID: services.QueueLocal}, []string{"P0001", "P0009", "P0002", "P0006", "P0007"}},
		{"foreign ignores stored shift", services.QueueRequest{ID: services.QueueForeign}, []string{"P0003"}},
		{"warranty has only a completed order", services.QueueRequest{ID: services.QueueWarranty}, []string{}},
		{"morning shift", services.QueueRequest{ID: services.QueueLocalMorning}, []string{"P0001", "P0006", "P0007"}},
		{"local orders without shift", services.QueueRequest{ID: services.QueueLocalNoShift}, []string{"P0009"}},
		{"saltillo only holds local orders", services.QueueRequest{ID: services.QueueLocalSaltillo}, []string{}},
		{"in process spans shipment types", services.QueueRequest{ID: services.QueueInProcess}, []string{"P0002", "P0008"}},
		{"triage is active and not in process", services.QueueRequest{ID: services.QueueTriage}, []string{"P0001", "P0009", "P0006", "P0007", "P0003"}},
		{"due today", services.QueueRequest{ID: services.QueueDueToday}, []string{"P0001", "P0009", "P0008"}},
		{"due today filtered to local", services.QueueRequest{ID: services.QueueDueToday, ShipmentType: order.Local}, []string{"P0001", "P0009"}},
		{"due tomorrow", services.QueueRequest{ID: services.QueueDueTomorrow}, []string{"P0002"}},
		{"overdue", services.QueueRequest{ID: services.QueueOverdue}, []string{"P0003"}},
		{"history", services.QueueRequest{ID: services.QueueHistory}, []string{"P0004"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Queue(orders, tt.req, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}

	t.Run("should fail for unknown queue", func(t *testing.T) {
		_, err := c.Queue(orders, services.QueueRequest{ID: "nope"}, now)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestClassifier_StatusProfile(t *testing.T) {
	c := services.NewClassifier(services.FulfillmentProfile(), time.UTC)

	got, err := c.Queue(dataset(), services.QueueRequest{ID: services.QueueTriage}, now)

	require.NoError(t, err)
	assert.Equal(t, []string{"P0003", "P0001", "P0009", "P0006", "P0007"}, ids(got))
}

func TestClassifier_UsesLocationForToday(t *testing.T) {
	monterrey := time.FixedZone("CST", -6*60*60)
	c := services.NewClassifier(services.IntakeProfile(), monterrey)
	lateNight := time.Date(2025, 3, 15, 3, 0, 0, 0, time.UTC) // 21:00 on the 14th locally

	got, err := c.Queue(dataset(), services.QueueRequest{ID: services.QueueDueToday}, lateNight)

	require.NoError(t, err)
	assert.Equal(t, []string{"P0001", "P0009", "P0008"}, ids(got))
}

func TestClassifier_Counts(t *testing.T) {
	c := services.NewClassifier(services.IntakeProfile(), time.UTC)

	counts := c.Counts(dataset(), now)

	assert.Len(t, counts, len(services.Queues()))
	assert.Equal(t, 5, counts[services.QueueLocal])
	assert.Equal(t, 2, counts[services.QueueInProcess])
	assert.Equal(t, 5, counts[services.QueueTriage])
	assert.Equal(t, 1, counts[services.QueueHistory])
	assert.Equal(t, 0, counts[services.QueueWarranty])
}

func TestClassifier_ShiftDateGroups(t *testing.T) {
	c := services.NewClassifier(services.IntakeProfile(), time.UTC)
	orders := append(dataset(),
		build(fixture{id: "P0010", shipment: order.Local, shift: order.MorningLocal, delivery: day(0)}),
	)

	groups := c.ShiftDateGroups(orders, order.MorningLocal)

	require.Len(t, groups, 3)
	require.NotNil(t, groups[0].Date)
	assert.True(t, day(0).Equal(*groups[0].Date))
	assert.Equal(t, []string{"P0001", "P0010"}, ids(groups[0].Orders))
	assert.True(t, day(3).Equal(*groups[1].Date))
	assert.Equal(t, []string{"P0006"}, ids(groups[1].Orders))
	assert.Nil(t, groups[2].Date)
	assert.Equal(t, []string{"P0007"}, ids(groups[2].Orders))
}

func TestQueueIDs(t *testing.T) {
	id, err := services.ParseQueueID("due-today")
	require.NoError(t, err)
	assert.Equal(t, services.QueueDueToday, id)

	_, err = services.ParseQueueID("everything")
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	assert.Equal(t, services.QueueLocalWarehouse, services.ShiftQueue(order.Warehouse))
	q, ok := services.ShipmentQueue(order.GuideRequest)
	assert.True(t, ok)
	assert.Equal(t, services.QueueGuideRequest, q)
}
