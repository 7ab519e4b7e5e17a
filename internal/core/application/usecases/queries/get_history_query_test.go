package queries_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
)

func TestGetHistoryQueryHandler(t *testing.T) {
	recent := now.Add(-2 * time.Hour)
	older := now.Add(-48 * time.Hour)
	expired := now.Add(-40 * 24 * time.Hour)

	reader := &MockOrderReader{}
	reader.On("Load", t.Context()).Return(snapshotOf(
		restore(order.Snapshot{ID: orderID("P0001"), Status: order.Completed, CompletedAt: &older}),
		restore(order.Snapshot{ID: orderID("P0002"), Status: order.Completed, CompletedAt: &recent}),
		restore(order.Snapshot{ID: orderID("P0003"), Status: order.Completed, CompletedAt: &expired}),
		restore(order.Snapshot{ID: orderID("P0004"), Status: order.InProcess}),
	), nil)

	handler := queries.NewGetHistoryQueryHandler(reader, services.NewClassifier(services.IntakeProfile(), time.UTC), clockwork.NewFakeClockAt(now))

	views, err := handler.Handle(t.Context(), queries.NewGetHistoryQuery())

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "P0002", views[0].ID)
	assert.Equal(t, "P0001", views[1].ID)
	assert.True(t, views[0].ReadOnly)
}

func TestGetHistoryQueryHandler_NotConstructed(t *testing.T) {
	handler := queries.NewGetHistoryQueryHandler(&MockOrderReader{}, services.NewClassifier(services.IntakeProfile(), nil), clockwork.NewFakeClockAt(now))

	_, err := handler.Handle(t.Context(), queries.GetHistoryQuery{})

	assert.ErrorIs(t, err, queries.ErrGetHistoryQueryIsNotConstructed)
}
