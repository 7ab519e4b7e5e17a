package commands

import (
	"context"
	"log/slog"

	"orderdesk/internal/core/application/attachments"
	"orderdesk/internal/core/application/records"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// AttachFileCommandHandler stores the blob under the order folder and appends
// its URL to the category's attachment list with a single cell write.
//
// The read-only check runs before the upload so completed orders never gain
// orphan objects. When the cell write fails the object stays in storage and
// shows up as an unreferenced file of the order.
type AttachFileCommandHandler struct {
	repo   OrderRepository
	store  ports.AttachmentStore
	prefix string
	logger *slog.Logger
}

// NewAttachFileCommandHandler creates a handler that uploads to store under
// prefix. An empty prefix puts order folders at the bucket root.
func NewAttachFileCommandHandler(
	repo OrderRepository,
	store ports.AttachmentStore,
	prefix string,
	logger *slog.Logger,
) AttachFileCommandHandler {
	return AttachFileCommandHandler{
		repo:   repo,
		store:  store,
		prefix: prefix,
		logger: logger.With("component", "attach_file"),
	}
}

// Handle returns the stored URL.
func (h AttachFileCommandHandler) Handle(ctx context.Context, cmd AttachFileCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	snapshot, err := h.repo.Load(ctx)
	if err != nil {
		return "", err
	}

	loaded, err := snapshot.Find(cmd.OrderID())
	if err != nil {
		return "", err
	}
	if loaded.IsReadOnly() {
		return "", order.ErrOrderIsReadOnly
	}

	key, err := attachments.NewKey(h.prefix, cmd.OrderID(), cmd.Filename())
	if err != nil {
		return "", err
	}

	url, err := h.store.Store(ctx, key, ports.Blob{Body: cmd.Body(), Size: cmd.Size(), ContentType: cmd.ContentType()})
	if err != nil {
		h.logger.ErrorContext(ctx, "upload failed", "order_id", cmd.OrderID().String(), "key", key, "error", err)
		return "", err
	}

	o := loaded.Clone()
	fields, err := o.AddAttachment(cmd.Category(), url)
	if err != nil {
		return "", err
	}

	if err = h.repo.Save(ctx, snapshot.Handle, records.Change{Order: o, Fields: fields}); err != nil {
		h.logger.WarnContext(ctx, "uploaded file is not linked to its order", "order_id", o.ID().String(), "key", key)
		return "", err
	}

	h.logger.InfoContext(ctx, "file attached",
		"order_id", o.ID().String(),
		"category", cmd.Category().String(),
		"key", key,
	)
	return url, nil
}
