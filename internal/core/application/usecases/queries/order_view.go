// Package queries contains read-only operations over order snapshots.
// Handlers load a fresh snapshot, classify it and return plain view structs.
package queries

import (
	"context"
	"time"

	"orderdesk/internal/core/application/records"
	"orderdesk/internal/core/domain/model/order"
)

// OrderReader loads snapshots. records.OrderRepository implements it.
type OrderReader interface {
	Load(ctx context.Context) (records.Snapshot, error)
}

// OrderView is the display form of an order. Enum fields carry both the
// engine name and the stored label.
type OrderView struct {
	ID                      string     `json:"id"`
	InvoiceFolio            string     `json:"invoiceFolio,omitempty"`
	RegisteredAt            *time.Time `json:"registeredAt,omitempty"`
	Salesperson             string     `json:"salesperson,omitempty"`
	ClientName              string     `json:"clientName"`
	ShipmentType            string     `json:"shipmentType"`
	ShipmentLabel           string     `json:"shipmentLabel"`
	DeliveryDate            *time.Time `json:"deliveryDate,omitempty"`
	Shift                   string     `json:"shift"`
	ShiftLabel              string     `json:"shiftLabel"`
	Status                  string     `json:"status"`
	StatusLabel             string     `json:"statusLabel"`
	PaymentStatus           string     `json:"paymentStatus,omitempty"`
	Comment                 string     `json:"comment,omitempty"`
	Notes                   string     `json:"notes,omitempty"`
	FulfillmentModification string     `json:"fulfillmentModification,omitempty"`
	Assignee                string     `json:"assignee,omitempty"`
	ProcessingStartedAt     *time.Time `json:"processingStartedAt,omitempty"`
	CompletedAt             *time.Time `json:"completedAt,omitempty"`
	AttachmentCount         int        `json:"attachmentCount"`
	FulfillmentAttachments  int        `json:"fulfillmentAttachmentCount"`
	ReadOnly                bool       `json:"readOnly"`
}

// NewOrderView builds the display form. The source row index is not exposed.
func NewOrderView(o *order.Order) OrderView {
	return OrderView{
		ID:                      o.ID().String(),
		InvoiceFolio:            o.InvoiceFolio(),
		RegisteredAt:            o.RegisteredAt(),
		Salesperson:             o.Salesperson(),
		ClientName:              o.ClientName(),
		ShipmentType:            o.ShipmentType().String(),
		ShipmentLabel:           records.ShipmentLabel(o.ShipmentType()),
		DeliveryDate:            o.DeliveryDate(),
		Shift:                   o.EffectiveShift().String(),
		ShiftLabel:              records.ShiftLabel(o.EffectiveShift()),
		Status:                  o.Status().String(),
		StatusLabel:             records.StatusLabel(o.Status()),
		PaymentStatus:           o.PaymentStatus(),
		Comment:                 o.Comment(),
		Notes:                   o.Notes(),
		FulfillmentModification: o.FulfillmentModification(),
		Assignee:                o.Assignee(),
		ProcessingStartedAt:     o.ProcessingStartedAt(),
		CompletedAt:             o.CompletedAt(),
		AttachmentCount:         len(o.Attachments()),
		FulfillmentAttachments:  len(o.FulfillmentAttachments()),
		ReadOnly:                o.IsReadOnly(),
	}
}

func newOrderViews(orders []*order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}
	return views
}
