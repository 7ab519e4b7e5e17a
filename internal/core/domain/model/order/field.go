package order

// Field names one persisted attribute of an order. Mutations report the
// fields they changed so the caller can write exactly those cells.
type Field int

const (
	FieldOrderID Field = iota
	FieldInvoiceFolio
	FieldRegisteredAt
	FieldSalesperson
	FieldClientName
	FieldShipmentType
	FieldDeliveryDate
	FieldComment
	FieldNotes
	FieldFulfillmentModification
	FieldAttachments
	FieldFulfillmentAttachments
	FieldStatus
	FieldPaymentStatus
	FieldCompletedAt
	FieldProcessingStartedAt
	FieldShift
	FieldAssignee
)

// AttachmentCategory tells which attachment list a reference belongs to.
type AttachmentCategory int

const (
	OrderAttachments AttachmentCategory = iota
	FulfillmentAttachments
)

func (c AttachmentCategory) String() string {
	if c == FulfillmentAttachments {
		return "fulfillment"
	}
	return "order"
}

// Field returns the attribute holding this category's list.
func (c AttachmentCategory) Field() Field {
	if c == FulfillmentAttachments {
		return FieldFulfillmentAttachments
	}
	return FieldAttachments
}
