package commands

import (
	"errors"
	"io"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrAttachFileCommandIsNotConstructed = errors.New(
	"AttachFileCommand must be created via NewAttachFileCommand constructor",
)

// AttachFileCommand uploads a file and links it to an order.
type AttachFileCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.OrderID
	category    order.AttachmentCategory
	filename    string
	contentType string
	size        int64
	body        io.Reader

	guard guard.ConstructorGuard
}

func NewAttachFileCommand(
	orderID kernel.OrderID,
	category order.AttachmentCategory,
	filename string,
	contentType string,
	size int64,
	body io.Reader,
) (AttachFileCommand, error) {
	cmd := AttachFileCommand{
		category:    category,
		contentType: contentType,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setFile(filename, size, body),
	); err != nil {
		return AttachFileCommand{}, err
	}

	return cmd, nil
}

func (c AttachFileCommand) Validate() error {
	return c.guard.Validate(ErrAttachFileCommandIsNotConstructed)
}

func (c AttachFileCommand) OrderID() kernel.OrderID { return c.orderID }
func (c AttachFileCommand) Category() order.AttachmentCategory { return c.category }
func (c AttachFileCommand) Filename() string { return c.filename }
func (c AttachFileCommand) ContentType() string { return c.contentType }
func (c AttachFileCommand) Size() int64 { return c.size }
func (c AttachFileCommand) Body() io.Reader { return c.body }

func (c *AttachFileCommand) setOrderID(id kernel.OrderID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError("order id")
	}
	c.orderID = id
	return nil
}

func (c *AttachFileCommand) setFile(filename string, size int64, body io.Reader) error {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return errs.NewValueIsRequiredError("file name")
	}
	if body == nil {
		return errs.NewValueIsRequiredError("file body")
	}
	if size < 0 {
		return errs.NewValueIsOutOfRangeError("file size", size, 0, "unbounded")
	}
	c.filename = filename
	c.size = size
	c.body = body
	return nil
}
