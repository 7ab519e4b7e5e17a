package queries

import (
	"context"
	"log/slog"
	"time"

	"orderdesk/internal/core/application/attachments"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// DefaultSignedURLTTL is how long download links stay valid.
const DefaultSignedURLTTL = time.Hour

// GetOrderAttachmentsQueryHandler resolves the stored references of an order
// into download links and finds files stored under the order folder that the
// record does not mention.
//
// Signing failures are logged and fall back to the stored reference. Listing
// failures only drop the unreferenced section.
type GetOrderAttachmentsQueryHandler struct {
	reader OrderReader
	store  ports.AttachmentStore
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// NewGetOrderAttachmentsQueryHandler creates a handler signing links for ttl.
// A ttl of zero or less means DefaultSignedURLTTL.
func NewGetOrderAttachmentsQueryHandler(
	reader OrderReader,
	store ports.AttachmentStore,
	prefix string,
	ttl time.Duration,
	logger *slog.Logger,
) GetOrderAttachmentsQueryHandler {
	if ttl <= 0 {
		ttl = DefaultSignedURLTTL
	}
	return GetOrderAttachmentsQueryHandler{
		reader: reader,
		store:  store,
		prefix: prefix,
		ttl:    ttl,
		logger: logger.With("component", "order_attachments"),
	}
}

// Handle returns both attachment lists of the order and its unreferenced
// files. An unknown order is ObjectNotFound.
func (h GetOrderAttachmentsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderAttachmentsQuery,
) (GetOrderAttachmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderAttachmentsQueryResponse{}, err
	}

	snapshot, err := h.reader.Load(ctx)
	if err != nil {
		return GetOrderAttachmentsQueryResponse{}, err
	}

	o, err := snapshot.Find(query.OrderID())
	if err != nil {
		return GetOrderAttachmentsQueryResponse{}, err
	}

	response := GetOrderAttachmentsQueryResponse{
		OrderID:      o.ID().String(),
		Order:        []AttachmentView{},
		Fulfillment:  []AttachmentView{},
		Unreferenced: []AttachmentView{},
	}
	referenced := make(map[string]bool)

	for _, raw := range o.AttachmentsOf(order.OrderAttachments) {
		view := h.view(ctx, attachments.Resolve(raw))
		referenced[view.Key] = true
		response.Order = append(response.Order, view)
	}
	for _, raw := range o.AttachmentsOf(order.FulfillmentAttachments) {
		view := h.view(ctx, attachments.Resolve(raw))
		referenced[view.Key] = true
		response.Fulfillment = append(response.Fulfillment, view)
	}

	for _, obj := range h.discover(ctx, o.ID()) {
		if referenced[obj.Key] {
			continue
		}
		referenced[obj.Key] = true
		view := h.view(ctx, attachments.Reference{
			Raw:         obj.Key,
			Key:         obj.Key,
			DisplayName: obj.DisplayName,
			IsImage:     attachments.IsImage(obj.DisplayName),
		})
		view.Size = obj.Size
		response.Unreferenced = append(response.Unreferenced, view)
	}

	return response, nil
}

func (h GetOrderAttachmentsQueryHandler) view(ctx context.Context, ref attachments.Reference) AttachmentView {
	view := AttachmentView{Name: ref.DisplayName, Key: ref.Key, URL: ref.Raw, IsImage: ref.IsImage}
	if ref.Key == "" {
		return view
	}

	signed, err := h.store.SignedURL(ctx, ref.Key, h.ttl)
	if err != nil || signed == "" {
		h.logger.WarnContext(ctx, "signing failed, using stored reference", "key", ref.Key, "error", err)
		return view
	}
	view.URL = signed
	view.Signed = true
	return view
}

// discover returns the objects under the first candidate prefix that has any.
func (h GetOrderAttachmentsQueryHandler) discover(ctx context.Context, id kernel.OrderID) []ports.StoredObject {
	for _, prefix := range attachments.CandidatePrefixes(h.prefix, id) {
		objects, err := h.store.ListUnderPrefix(ctx, prefix)
		if err != nil {
			h.logger.WarnContext(ctx, "listing failed", "prefix", prefix, "error", err)
			continue
		}
		if len(objects) > 0 {
			return objects
		}
	}
	return nil
}
