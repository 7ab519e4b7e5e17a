package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/memory"
	"orderdesk/internal/core/application/attachments"
	"orderdesk/internal/core/application/records"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/logger"
)

type fakeBucket struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (b *fakeBucket) Store(_ context.Context, key string, blob ports.Blob) (string, error) {
	data, err := io.ReadAll(blob.Body)
	if err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[key] = data
	return "https://bucket.s3.us-east-1.amazonaws.com/" + key, nil
}

func (b *fakeBucket) ListUnderPrefix(_ context.Context, prefix string) ([]ports.StoredObject, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []ports.StoredObject
	for k, v := range b.objects {
		if strings.HasPrefix(k, prefix) {
			out = append(out, ports.StoredObject{Key: k, DisplayName: attachments.DisplayName(k), Size: int64(len(v))})
		}
	}
	return out, nil
}

func (b *fakeBucket) SignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://signed.example/" + key, nil
}

type fixture struct {
	echo  *echo.Echo
	store *memory.RecordStore
	clock *clockwork.FakeClock
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	loc := time.UTC
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 14, 10, 0, 0, 0, loc))
	codec := records.NewTimeCodec(loc)
	log := logger.Nop()

	store := memory.NewRecordStore("datos_pedidos", records.Columns())
	encoder := records.NewEncoder(codec)
	for i, id := range []string{"P0001", "P0002"} {
		oid, _ := kernel.OrderIDFromString(id)
		store.Seed(encoder.Row(records.Columns(), order.RestoreOrder(order.Snapshot{
			ID:             oid,
			ClientName:     "Cliente " + id,
			Salesperson:    "Ana",
			ShipmentType:   order.Local,
			Shift:          order.MorningLocal,
			Status:         order.Pending,
			SourceRowIndex: i + 2,
		})))
	}

	profile := services.IntakeProfile()
	classifier := services.NewClassifier(profile, loc)
	repo := records.NewOrderRepository(store, codec, log)
	bucket := &fakeBucket{objects: map[string][]byte{}}

	server := httpadapter.NewServer(
		commands.NewCreateOrderCommandHandler(repo, clock, log),
		commands.NewChangeOrderStatusCommandHandler(repo, profile.Model, clock, log),
		commands.NewUpdateOrderDetailsCommandHandler(repo, log),
		commands.NewAttachFileCommandHandler(repo, bucket, attachments.DefaultPrefix, log),
		commands.NewSweepStaleOrdersCommandHandler(repo, services.NewStalenessSweep(profile.StaleAfter), clock, log),
		queries.NewGetDashboardQueryHandler(repo, classifier, clock),
		queries.NewGetQueueQueryHandler(repo, classifier, clock),
		queries.NewGetHistoryQueryHandler(repo, classifier, clock),
		queries.NewGetOrderAttachmentsQueryHandler(repo, bucket, attachments.DefaultPrefix, time.Hour, log),
		codec,
		log,
	)

	e := echo.New()
	server.Register(e)
	return fixture{echo: e, store: store, clock: clock}
}

func (f fixture) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func (f fixture) cell(t *testing.T, row int, column string) string {
	t.Helper()
	v, ok := f.store.Cell(row, column)
	require.True(t, ok, "row %d column %s", row, column)
	return v
}

func TestHealth(t *testing.T) {
	rec := newFixture(t).do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestCreateOrder(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/orders", httpadapter.NewOrderRequest{
		ClientName:   "Ferretería Norte",
		Salesperson:  "Ruth",
		ShipmentType: "🚚 Pedido Foráneo",
		DeliveryDate: "2025-03-20",
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created httpadapter.CreatedOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "P0003", created.ID)

	assert.Equal(t, "P0003", f.cell(t, 4, records.ColumnOrderID))
	assert.Equal(t, "🔴 Pendiente", f.cell(t, 4, records.ColumnStatus))
	assert.Equal(t, "2025-03-14 10:00:00", f.cell(t, 4, records.ColumnRegisteredAt))
	assert.Equal(t, "2025-03-20", f.cell(t, 4, records.ColumnDeliveryDate))
	assert.Equal(t, records.NoShiftLabel, f.cell(t, 4, records.ColumnShift))
}

func TestCreateOrder_Invalid(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/orders", httpadapter.NewOrderRequest{ShipmentType: "Local"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/orders", httpadapter.NewOrderRequest{ClientName: "X", ShipmentType: "Teleport"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestChangeStatus(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/orders/P0001/status", httpadapter.ChangeStatusRequest{Status: "InProcess"})

	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	assert.Equal(t, "🟡 En Proceso", f.cell(t, 2, records.ColumnStatus))
	assert.Equal(t, "2025-03-14 10:00:00", f.cell(t, 2, records.ColumnProcessingStartedAt))
	assert.Equal(t, "🔴 Pendiente", f.cell(t, 3, records.ColumnStatus))
}

func TestChangeStatus_Errors(t *testing.T) {
	f := newFixture(t)

	t.Run("pending cannot jump to completed", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/orders/P0001/status", httpadapter.ChangeStatusRequest{Status: "✅ Completado"})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "🔴 Pendiente", f.cell(t, 2, records.ColumnStatus))
	})

	t.Run("completion needs an assignee", func(t *testing.T) {
		require.Equal(t, http.StatusNoContent,
			f.do(t, http.MethodPost, "/api/v1/orders/P0002/status", httpadapter.ChangeStatusRequest{Status: "InProcess"}).Code)

		rec := f.do(t, http.MethodPost, "/api/v1/orders/P0002/status", httpadapter.ChangeStatusRequest{Status: "Completed"})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "🟡 En Proceso", f.cell(t, 3, records.ColumnStatus))
	})

	t.Run("unknown order", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/orders/P0404/status", httpadapter.ChangeStatusRequest{Status: "InProcess"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/orders/P0001/status", httpadapter.ChangeStatusRequest{Status: "Lost"})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestUpdateOrder(t *testing.T) {
	f := newFixture(t)
	notes := "tocar timbre"
	assignee := " Luis "

	rec := f.do(t, http.MethodPatch, "/api/v1/orders/P0002", httpadapter.UpdateOrderRequest{Notes: &notes, Assignee: &assignee})

	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	assert.Equal(t, "tocar timbre", f.cell(t, 3, records.ColumnNotes))
	assert.Equal(t, "Luis", f.cell(t, 3, records.ColumnAssignee))

	rec = f.do(t, http.MethodPatch, "/api/v1/orders/P0002", httpadapter.UpdateOrderRequest{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetDashboard_SweepsStaleOrders(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, http.StatusNoContent,
		f.do(t, http.MethodPost, "/api/v1/orders/P0001/status", httpadapter.ChangeStatusRequest{Status: "InProcess"}).Code)

	f.clock.Advance(2 * time.Hour)
	rec := f.do(t, http.MethodGet, "/api/v1/dashboard", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "🟠 Demorado", f.cell(t, 2, records.ColumnStatus))

	var dashboard queries.GetDashboardQueryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
	assert.Equal(t, services.ProfileIntake, dashboard.Profile)
	assert.Equal(t, []string{"", "Ana"}, dashboard.AssigneeOptions)
	for _, q := range dashboard.Queues {
		if q.ID == string(services.QueueLocal) {
			require.Len(t, q.Orders, 2)
			assert.Equal(t, order.Delayed.String(), q.Orders[0].Status)
		}
	}
}

func TestGetQueue(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/queues/local-morning?shipment=Local", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var views []queries.OrderView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	assert.Len(t, views, 2)

	rec = f.do(t, http.MethodGet, "/api/v1/queues/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/queues/local?shipment=Teleport", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetHistory(t *testing.T) {
	f := newFixture(t)
	assignee := "Luis"
	require.Equal(t, http.StatusNoContent,
		f.do(t, http.MethodPatch, "/api/v1/orders/P0002", httpadapter.UpdateOrderRequest{Assignee: &assignee}).Code)
	for _, status := range []string{"InProcess", "Completed"} {
		require.Equal(t, http.StatusNoContent,
			f.do(t, http.MethodPost, "/api/v1/orders/P0002/status", httpadapter.ChangeStatusRequest{Status: status}).Code)
	}

	rec := f.do(t, http.MethodGet, "/api/v1/history", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var views []queries.OrderView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "P0002", views[0].ID)
	assert.True(t, views[0].ReadOnly)
}

func TestAttachments(t *testing.T) {
	f := newFixture(t)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("category", "fulfillment"))
	part, err := form.CreateFormFile("file", "guia envio.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/P0001/attachments", &body)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var uploaded httpadapter.AttachmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &uploaded))
	assert.True(t, strings.HasPrefix(uploaded.URL, "https://bucket.s3.us-east-1.amazonaws.com/adjuntos_pedidos/P0001/guia_envio_"))
	assert.Equal(t, uploaded.URL, f.cell(t, 2, records.ColumnFulfillmentAttachments))

	rec = f.do(t, http.MethodGet, "/api/v1/orders/P0001/attachments", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var listed queries.GetOrderAttachmentsQueryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Fulfillment, 1)
	assert.True(t, listed.Fulfillment[0].Signed)
	assert.True(t, strings.HasPrefix(listed.Fulfillment[0].URL, "https://signed.example/adjuntos_pedidos/P0001/"))
	assert.Empty(t, listed.Unreferenced)
}
