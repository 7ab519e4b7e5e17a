package records_test

import (
	"testing"

	"orderdesk/internal/core/application/records"
	"orderdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestParseShipmentType(t *testing.T) {
	tests := []struct {
		label string
		want  order.ShipmentType
	}{
		{"📍 Pedido Local", order.Local},
		{" 📍 Pedido Local ", order.Local},
		{"🚚 Pedido Foráneo", order.Foreign},
		{"Garantía", order.Warranty},
		{"🔁 Devolución", order.Return},
		{"📬 Solicitud de guía", order.GuideRequest},
		{"", order.ShipmentUnknown},
		{"Mensajería", order.ShipmentUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, records.ParseShipmentType(tt.label))
		})
	}
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, order.Pending, records.ParseStatus(""))
	assert.Equal(t, order.Pending, records.ParseStatus("🔴 Pendiente"))
	assert.Equal(t, order.InProcess, records.ParseStatus(" 🟡 En Proceso"))
	assert.Equal(t, order.Completed, records.ParseStatus("completado"))
	assert.Equal(t, order.Unknown, records.ParseStatus("🟣 Archivado"))
}

func TestParseShift(t *testing.T) {
	assert.Equal(t, order.MorningLocal, records.ParseShift("☀️ Local Mañana"))
	assert.Equal(t, order.Warehouse, records.ParseShift("📦 Pasa a Bodega "))
	assert.Equal(t, order.NotApplicable, records.ParseShift("N/A"))
	assert.Equal(t, order.NotApplicable, records.ParseShift("Turno viejo"))
}

func TestLabelsRoundTrip(t *testing.T) {
	for _, s := range order.Statuses() {
		assert.Equal(t, s, records.ParseStatus(records.StatusLabel(s)), s.String())
	}
	for _, st := range order.ShipmentTypes() {
		assert.Equal(t, st, records.ParseShipmentType(records.ShipmentLabel(st)), st.String())
	}
	for _, sh := range order.Shifts() {
		assert.Equal(t, sh, records.ParseShift(records.ShiftLabel(sh)), sh.String())
	}
}
