// Package records is the serialization boundary between the tabular store
// and the order model. It owns the column names, the display labels of the
// enums, and the date and attachment codecs, and it turns loaded rows into
// orders and orders back into cell values.
package records

import (
	"orderdesk/internal/core/domain/model/order"
)

// Persisted column names. They are part of the store contract.
const (
	ColumnOrderID                 = "ID_Pedido"
	ColumnInvoiceFolio            = "Folio_Factura"
	ColumnRegisteredAt            = "Hora_Registro"
	ColumnSalesperson             = "Vendedor_Registro"
	ColumnClientName              = "Cliente"
	ColumnShipmentType            = "Tipo_Envio"
	ColumnDeliveryDate            = "Fecha_Entrega"
	ColumnComment                 = "Comentario"
	ColumnNotes                   = "Notas"
	ColumnFulfillmentModification = "Modificacion_Surtido"
	ColumnAttachments             = "Adjuntos"
	ColumnFulfillmentAttachments  = "Adjuntos_Surtido"
	ColumnStatus                  = "Estado"
	ColumnPaymentStatus           = "Estado_Pago"
	ColumnCompletedAt             = "Fecha_Completado"
	ColumnProcessingStartedAt     = "Hora_Proceso"
	ColumnShift                   = "Turno"
	ColumnAssignee                = "Surtidor"
)

var fieldColumns = map[order.Field]string{
	order.FieldOrderID:                 ColumnOrderID,
	order.FieldInvoiceFolio:            ColumnInvoiceFolio,
	order.FieldRegisteredAt:            ColumnRegisteredAt,
	order.FieldSalesperson:             ColumnSalesperson,
	order.FieldClientName:              ColumnClientName,
	order.FieldShipmentType:            ColumnShipmentType,
	order.FieldDeliveryDate:            ColumnDeliveryDate,
	order.FieldComment:                 ColumnComment,
	order.FieldNotes:                   ColumnNotes,
	order.FieldFulfillmentModification: ColumnFulfillmentModification,
	order.FieldAttachments:             ColumnAttachments,
	order.FieldFulfillmentAttachments:  ColumnFulfillmentAttachments,
	order.FieldStatus:                  ColumnStatus,
	order.FieldPaymentStatus:           ColumnPaymentStatus,
	order.FieldCompletedAt:             ColumnCompletedAt,
	order.FieldProcessingStartedAt:     ColumnProcessingStartedAt,
	order.FieldShift:                   ColumnShift,
	order.FieldAssignee:                ColumnAssignee,
}

// Columns returns the canonical layout used when creating a new table.
func Columns() []string {
	return []string{
		ColumnOrderID,
		ColumnInvoiceFolio,
		ColumnRegisteredAt,
		ColumnSalesperson,
		ColumnClientName,
		ColumnShipmentType,
		ColumnDeliveryDate,
		ColumnComment,
		ColumnNotes,
		ColumnFulfillmentModification,
		ColumnAttachments,
		ColumnFulfillmentAttachments,
		ColumnStatus,
		ColumnPaymentStatus,
		ColumnCompletedAt,
		ColumnProcessingStartedAt,
		ColumnShift,
		ColumnAssignee,
	}
}

// ColumnOf returns the column that persists f.
func ColumnOf(f order.Field) string {
	return fieldColumns[f]
}
