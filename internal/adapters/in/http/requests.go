package http

import (
	"fmt"
	"strings"

	"orderdesk/internal/core/application/records"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// NewOrderRequest is the body of POST /api/v1/orders. Enum fields accept the
// engine name ("Local") or the stored label ("📍 Pedido Local").
type NewOrderRequest struct {
	InvoiceFolio  string   `json:"invoiceFolio"`
	Salesperson   string   `json:"salesperson"`
	ClientName    string   `json:"clientName"`
	ShipmentType  string   `json:"shipmentType"`
	DeliveryDate  string   `json:"deliveryDate"`
	Shift         string   `json:"shift"`
	Comment       string   `json:"comment"`
	PaymentStatus string   `json:"paymentStatus"`
	Attachments   []string `json:"attachments"`
}

// UpdateOrderRequest is the body of PATCH /api/v1/orders/:id. Absent fields
// are left unchanged.
type UpdateOrderRequest struct {
	Notes                   *string `json:"notes"`
	Assignee                *string `json:"assignee"`
	DeliveryDate            *string `json:"deliveryDate"`
	Shift                   *string `json:"shift"`
	FulfillmentModification *string `json:"fulfillmentModification"`
}

// ChangeStatusRequest is the body of POST /api/v1/orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// CreatedOrderResponse is returned by POST /api/v1/orders.
type CreatedOrderResponse struct {
	ID string `json:"id"`
}

// AttachmentResponse is returned by POST /api/v1/orders/:id/attachments.
type AttachmentResponse struct {
	URL string `json:"url"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func parseShipmentType(s string) (order.ShipmentType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return order.ShipmentUnknown, nil
	}
	for _, t := range order.ShipmentTypes() {
		if strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}
	if t := records.ParseShipmentType(s); t != order.ShipmentUnknown {
		return t, nil
	}
	return order.ShipmentUnknown, errs.NewValueIsInvalidErrorWithCause("shipment type",
		fmt.Errorf("%q is not a shipment type", s))
}

func parseShift(s string) (order.Shift, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return order.NotApplicable, nil
	}
	for _, shift := range order.Shifts() {
		if strings.EqualFold(shift.String(), s) {
			return shift, nil
		}
	}
	if shift := records.ParseShift(s); shift != order.NotApplicable || s == records.NoShiftLabel {
		return shift, nil
	}
	return order.NotApplicable, errs.NewValueIsInvalidErrorWithCause("shift",
		fmt.Errorf("%q is not a shift", s))
}

func parseStatus(s string) (order.Status, error) {
	s = strings.TrimSpace(s)
	for _, status := range order.Statuses() {
		if strings.EqualFold(status.String(), s) {
			return status, nil
		}
	}
	if status := records.ParseStatus(s); s != "" && status != order.Unknown {
		return status, nil
	}
	return order.Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a status", s))
}

func parseCategory(s string) (order.AttachmentCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", order.OrderAttachments.String():
		return order.OrderAttachments, nil
	case order.FulfillmentAttachments.String():
		return order.FulfillmentAttachments, nil
	default:
		return order.OrderAttachments, errs.NewValueIsInvalidErrorWithCause("attachment category",
			fmt.Errorf("%q is neither order nor fulfillment", s))
	}
}
