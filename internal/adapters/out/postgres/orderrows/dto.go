// Package orderrows stores the order table in a relational database with the
// same column layout as the spreadsheet. Each row keeps its 1-based sheet
// position in row_index so field updates address rows exactly as a sheet
// would. Rows deleted by hand leave gaps; loads report each row's own index.
package orderrows

import (
	"orderdesk/internal/core/application/records"
	"orderdesk/internal/core/ports"
)

// TableName is the table holding the orders.
const TableName = "datos_pedidos"

// OrderRowDTO is one stored row. Every persisted column is free text, as in
// the spreadsheet; the engine normalizes values on load.
type OrderRowDTO struct {
	RowIndex int `gorm:"column:row_index;primaryKey;autoIncrement:false"`

	OrderID                 string `gorm:"column:ID_Pedido;index"`
	InvoiceFolio            string `gorm:"column:Folio_Factura"`
	RegisteredAt            string `gorm:"column:Hora_Registro"`
	Salesperson             string `gorm:"column:Vendedor_Registro"`
	ClientName              string `gorm:"column:Cliente"`
	ShipmentType            string `gorm:"column:Tipo_Envio"`
	DeliveryDate            string `gorm:"column:Fecha_Entrega"`
	Comment                 string `gorm:"column:Comentario"`
	Notes                   string `gorm:"column:Notas"`
	FulfillmentModification string `gorm:"column:Modificacion_Surtido"`
	Attachments             string `gorm:"column:Adjuntos"`
	FulfillmentAttachments  string `gorm:"column:Adjuntos_Surtido"`
	Status                  string `gorm:"column:Estado;index"`
	PaymentStatus           string `gorm:"column:Estado_Pago"`
	CompletedAt             string `gorm:"column:Fecha_Completado"`
	ProcessingStartedAt     string `gorm:"column:Hora_Proceso"`
	Shift                   string `gorm:"column:Turno"`
	Assignee                string `gorm:"column:Surtidor"`
}

// TableName overrides GORM's pluralized default.
func (OrderRowDTO) TableName() string {
	return TableName
}

// cells maps every persisted column name to its field.
func (d *OrderRowDTO) cells() map[string]*string {
	return map[string]*string{
		records.ColumnOrderID:                 &d.OrderID,
		records.ColumnInvoiceFolio:            &d.InvoiceFolio,
		records.ColumnRegisteredAt:            &d.RegisteredAt,
		records.ColumnSalesperson:             &d.Salesperson,
		records.ColumnClientName:              &d.ClientName,
		records.ColumnShipmentType:            &d.ShipmentType,
		records.ColumnDeliveryDate:            &d.DeliveryDate,
		records.ColumnComment:                 &d.Comment,
		records.ColumnNotes:                   &d.Notes,
		records.ColumnFulfillmentModification: &d.FulfillmentModification,
		records.ColumnAttachments:             &d.Attachments,
		records.ColumnFulfillmentAttachments:  &d.FulfillmentAttachments,
		records.ColumnStatus:                  &d.Status,
		records.ColumnPaymentStatus:           &d.PaymentStatus,
		records.ColumnCompletedAt:             &d.CompletedAt,
		records.ColumnProcessingStartedAt:     &d.ProcessingStartedAt,
		records.ColumnShift:                   &d.Shift,
		records.ColumnAssignee:                &d.Assignee,
	}
}

// toRow converts a stored row to a loaded record.
func toRow(dto OrderRowDTO) ports.Row {
	row := make(ports.Row, len(records.Columns()))
	for column, value := range dto.cells() {
		row[column] = *value
	}
	return row
}

// fromValues builds a row from values ordered like headers. Unknown headers
// are ignored.
func fromValues(rowIndex int, headers, values []string) OrderRowDTO {
	dto := OrderRowDTO{RowIndex: rowIndex}
	cells := dto.cells()
	for i, h := range headers {
		if i >= len(values) {
			break
		}
		if field, ok := cells[h]; ok {
			*field = values[i]
		}
	}
	return dto
}

// isColumn reports whether column is persisted.
func isColumn(column string) bool {
	_, ok := (&OrderRowDTO{}).cells()[column]
	return ok
}
