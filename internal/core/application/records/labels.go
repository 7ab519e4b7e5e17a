package records

import (
	"strings"

	"orderdesk/internal/core/domain/model/order"
)

// NoShiftLabel is written for orders without a shift.
const NoShiftLabel = "N/A"

var shipmentLabels = map[order.ShipmentType]string{
	order.Local:        "📍 Pedido Local",
	order.Foreign:      "🚚 Pedido Foráneo",
	order.Warranty:     "🛠 Garantía",
	order.Return:       "🔁 Devolución",
	order.GuideRequest: "📬 Solicitud de guía",
}

var shiftLabels = map[order.Shift]string{
	order.MorningLocal:   "☀️ Local Mañana",
	order.AfternoonLocal: "🌙 Local Tarde",
	order.Saltillo:       "🌵 Saltillo",
	order.Warehouse:      "📦 Pasa a Bodega",
	order.NotApplicable:  NoShiftLabel,
}

var statusLabels = map[order.Status]string{
	order.Pending:            "🔴 Pendiente",
	order.InProcess:          "🟡 En Proceso",
	order.Delayed:            "🟠 Demorado",
	order.Fulfilled:          "📦 Surtido",
	order.ReceptionCompleted: "📥 Recepción Completada",
	order.Delivered:          "🚚 Entregado",
	order.Completed:          "✅ Completado",
	order.Cancelled:          "❌ Cancelado",
}

// ShipmentLabel returns the stored label of t, or "" for unknown types.
func ShipmentLabel(t order.ShipmentType) string { return shipmentLabels[t] }

// ShiftLabel returns the stored label of s.
func ShiftLabel(s order.Shift) string {
	if label, ok := shiftLabels[s]; ok {
		return label
	}
	return NoShiftLabel
}

// StatusLabel returns the stored label of s, or "" for Unknown.
func StatusLabel(s order.Status) string { return statusLabels[s] }

// ParseShipmentType maps a stored label to a shipment type. Unmatched
// labels give ShipmentUnknown.
func ParseShipmentType(label string) order.ShipmentType {
	if t, ok := lookupLabel(shipmentLabels, label); ok {
		return t
	}
	return order.ShipmentUnknown
}

// ParseShift maps a stored label to a shift. Blank and unmatched labels
// give NotApplicable.
func ParseShift(label string) order.Shift {
	if s, ok := lookupLabel(shiftLabels, label); ok {
		return s
	}
	return order.NotApplicable
}

// ParseStatus maps a stored label to a status. A blank cell is a freshly
// captured order and reads as Pending; unmatched labels give Unknown.
func ParseStatus(label string) order.Status {
	if strings.TrimSpace(label) == "" {
		return order.Pending
	}
	if s, ok := lookupLabel(statusLabels, label); ok {
		return s
	}
	return order.Unknown
}

// lookupLabel matches the trimmed label exactly, then by its text without
// the leading emoji so "Pendiente" and "🔴 Pendiente" resolve alike.
func lookupLabel[K comparable](labels map[K]string, label string) (K, bool) {
	label = strings.TrimSpace(label)
	var zero K
	if label == "" {
		return zero, false
	}
	for k, v := range labels {
		if v == label {
			return k, true
		}
	}
	text := labelText(label)
	for k, v := range labels {
		if strings.EqualFold(labelText(v), text) {
			return k, true
		}
	}
	return zero, false
}

// labelText drops a leading emoji token.
func labelText(label string) string {
	label = strings.TrimSpace(label)
	head, rest, found := strings.Cut(label, " ")
	if !found || isWordLike(head) {
		return label
	}
	return strings.TrimSpace(rest)
}

func isWordLike(token string) bool {
	for _, r := range token {
		if r < 0x2000 {
			return true
		}
	}
	return false
}
