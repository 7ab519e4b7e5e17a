package records

import (
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// Normalizer turns loaded rows into orders.
//
// Rules:
//   - A missing column reads as an empty cell
//   - Dates that do not parse become absent
//   - Identifier and enum cells are trimmed before lookup
//   - The source row index is the one the store reported for the row, or
//     i + HeaderRow + 1 for the i-th data row when it reports none
type Normalizer struct {
	codec TimeCodec
}

// NewNormalizer creates a normalizer reading dates with codec.
func NewNormalizer(codec TimeCodec) Normalizer {
	return Normalizer{codec: codec}
}

// Normalize converts rows addressed by position. It never fails.
func (n Normalizer) Normalize(rows []ports.Row) []*order.Order {
	return n.NormalizeTable(ports.Table{Rows: rows})
}

// NormalizeTable converts every row of a load, keeping the row index the
// store reported for each one.
func (n Normalizer) NormalizeTable(table ports.Table) []*order.Order {
	orders := make([]*order.Order, 0, len(table.Rows))
	for i, row := range table.Rows {
		orders = append(orders, n.NormalizeRow(row, table.RowIndex(i)))
	}
	return orders
}

// NormalizeRow converts one row found at the given absolute row index.
func (n Normalizer) NormalizeRow(row ports.Row, rowIndex int) *order.Order {
	cell := func(column string) string { return row[column] }
	trimmed := func(column string) string { return strings.TrimSpace(row[column]) }

	// Blank identifiers stay zero.
	id, _ := kernel.OrderIDFromString(cell(ColumnOrderID))

	return order.RestoreOrder(order.Snapshot{
		ID:                      id,
		InvoiceFolio:            trimmed(ColumnInvoiceFolio),
		RegisteredAt:            n.codec.Parse(cell(ColumnRegisteredAt)),
		Salesperson:             trimmed(ColumnSalesperson),
		ClientName:              trimmed(ColumnClientName),
		ShipmentType:            ParseShipmentType(cell(ColumnShipmentType)),
		DeliveryDate:            n.codec.ParseDate(cell(ColumnDeliveryDate)),
		Comment:                 cell(ColumnComment),
		Notes:                   cell(ColumnNotes),
		FulfillmentModification: cell(ColumnFulfillmentModification),
		Attachments:             DecodeAttachments(cell(ColumnAttachments)),
		FulfillmentAttachments:  DecodeAttachments(cell(ColumnFulfillmentAttachments)),
		Status:                  ParseStatus(cell(ColumnStatus)),
		PaymentStatus:           trimmed(ColumnPaymentStatus),
		CompletedAt:             n.codec.Parse(cell(ColumnCompletedAt)),
		ProcessingStartedAt:     n.codec.Parse(cell(ColumnProcessingStartedAt)),
		Shift:                   ParseShift(cell(ColumnShift)),
		Assignee:                trimmed(ColumnAssignee),
		SourceRowIndex:          rowIndex,
	})
}
