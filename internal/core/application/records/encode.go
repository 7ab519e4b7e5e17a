package records

import (
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// Encoder writes order attributes as cell values.
type Encoder struct {
	codec TimeCodec
}

// NewEncoder creates an encoder writing dates with codec.
func NewEncoder(codec TimeCodec) Encoder {
	return Encoder{codec: codec}
}

// Value returns the cell value of field f.
func (e Encoder) Value(o *order.Order, f order.Field) string {
	switch f {
	case order.FieldOrderID:
		return o.ID().String()
	case order.FieldInvoiceFolio:
		return o.InvoiceFolio()
	case order.FieldRegisteredAt:
		return e.codec.FormatTimestamp(o.RegisteredAt())
	case order.FieldSalesperson:
		return o.Salesperson()
	case order.FieldClientName:
		return o.ClientName()
	case order.FieldShipmentType:
		return ShipmentLabel(o.ShipmentType())
	case order.FieldDeliveryDate:
		return e.codec.FormatDate(o.DeliveryDate())
	case order.FieldComment:
		return o.Comment()
	case order.FieldNotes:
		return o.Notes()
	case order.FieldFulfillmentModification:
		return o.FulfillmentModification()
	case order.FieldAttachments:
		return EncodeAttachments(o.Attachments())
	case order.FieldFulfillmentAttachments:
		return EncodeAttachments(o.FulfillmentAttachments())
	case order.FieldStatus:
		return StatusLabel(o.Status())
	case order.FieldPaymentStatus:
		return o.PaymentStatus()
	case order.FieldCompletedAt:
		return e.codec.FormatTimestamp(o.CompletedAt())
	case order.FieldProcessingStartedAt:
		return e.codec.FormatTimestamp(o.ProcessingStartedAt())
	case order.FieldShift:
		if o.ShipmentType() != order.Local {
			return NoShiftLabel
		}
		return ShiftLabel(o.Shift())
	case order.FieldAssignee:
		return o.Assignee()
	default:
		return ""
	}
}

// Updates returns one cell update per field, targeting the order's source row.
// Fields whose column is absent from the handle are skipped.
func (e Encoder) Updates(handle ports.SourceHandle, o *order.Order, fields []order.Field) []ports.FieldUpdate {
	updates := make([]ports.FieldUpdate, 0, len(fields))
	for _, f := range fields {
		column := ColumnOf(f)
		if column == "" || handle.ColumnIndex(column) < 0 {
			continue
		}
		updates = append(updates, ports.FieldUpdate{
			RowIndex: o.SourceRowIndex(),
			Column:   column,
			Value:    e.Value(o, f),
		})
	}
	return updates
}

// Row returns the values of o in the order of headers. Unknown headers get "".
func (e Encoder) Row(headers []string, o *order.Order) []string {
	byColumn := make(map[string]order.Field, len(fieldColumns))
	for f, column := range fieldColumns {
		byColumn[column] = f
	}

	values := make([]string, len(headers))
	for i, h := range headers {
		if f, ok := byColumn[h]; ok {
			values[i] = e.Value(o, f)
		}
	}
	return values
}
