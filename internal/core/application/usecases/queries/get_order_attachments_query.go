package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrGetOrderAttachmentsQueryIsNotConstructed = errors.New(
	"GetOrderAttachmentsQuery must be created via NewGetOrderAttachmentsQuery constructor",
)

// GetOrderAttachmentsQuery lists the files of one order with download links.
type GetOrderAttachmentsQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

func NewGetOrderAttachmentsQuery(orderID kernel.OrderID) (GetOrderAttachmentsQuery, error) {
	if orderID.IsZero() {
		return GetOrderAttachmentsQuery{}, errs.NewValueIsRequiredError("order id")
	}
	return GetOrderAttachmentsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderAttachmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderAttachmentsQueryIsNotConstructed)
}

func (q GetOrderAttachmentsQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// AttachmentView is one downloadable file. URL is signed when the reference
// resolves to an object key and signing succeeds; otherwise it is the stored
// reference.
type AttachmentView struct {
	Name    string `json:"name"`
	Key     string `json:"key,omitempty"`
	URL     string `json:"url"`
	IsImage bool   `json:"isImage"`
	Signed  bool   `json:"signed"`
	Size    int64  `json:"size,omitempty"`
}

// GetOrderAttachmentsQueryResponse groups the files of an order.
type GetOrderAttachmentsQueryResponse struct {
	OrderID      string           `json:"orderId"`
	Order        []AttachmentView `json:"order"`
	Fulfillment  []AttachmentView `json:"fulfillment"`
	Unreferenced []AttachmentView `json:"unreferenced"`
}
