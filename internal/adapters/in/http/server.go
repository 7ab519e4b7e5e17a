// Package http exposes the order engine as a JSON API. Every dashboard read
// sweeps stale orders first so the queues never show an overdue InProcess
// order that has not been marked Delayed.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"orderdesk/internal/core/application/records"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

const maxUploadSize = 20 << 20

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	changeStatusHandler  commands.ChangeOrderStatusCommandHandler
	updateDetailsHandler commands.UpdateOrderDetailsCommandHandler
	attachFileHandler    commands.AttachFileCommandHandler
	sweepHandler         commands.SweepStaleOrdersCommandHandler

	// Query handlers
	dashboardHandler   queries.GetDashboardQueryHandler
	queueHandler       queries.GetQueueQueryHandler
	historyHandler     queries.GetHistoryQueryHandler
	attachmentsHandler queries.GetOrderAttachmentsQueryHandler

	codec  records.TimeCodec
	logger *slog.Logger
}

func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	updateDetailsHandler commands.UpdateOrderDetailsCommandHandler,
	attachFileHandler commands.AttachFileCommandHandler,
	sweepHandler commands.SweepStaleOrdersCommandHandler,
	dashboardHandler queries.GetDashboardQueryHandler,
	queueHandler queries.GetQueueQueryHandler,
	historyHandler queries.GetHistoryQueryHandler,
	attachmentsHandler queries.GetOrderAttachmentsQueryHandler,
	codec records.TimeCodec,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		changeStatusHandler:  changeStatusHandler,
		updateDetailsHandler: updateDetailsHandler,
		attachFileHandler:    attachFileHandler,
		sweepHandler:         sweepHandler,
		dashboardHandler:     dashboardHandler,
		queueHandler:         queueHandler,
		historyHandler:       historyHandler,
		attachmentsHandler:   attachmentsHandler,
		codec:                codec,
		logger:               logger.With("component", "http"),
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/dashboard", s.GetDashboard)
	api.GET("/queues/:queue", s.GetQueue)
	api.GET("/history", s.GetHistory)
	api.POST("/orders", s.CreateOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.POST("/orders/:id/status", s.ChangeStatus)
	api.POST("/orders/:id/attachments", s.AttachFile)
	api.GET("/orders/:id/attachments", s.GetAttachments)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetDashboard handles GET /api/v1/dashboard?shipment=.
func (s *Server) GetDashboard(ctx echo.Context) error {
	shipment, err := parseShipmentType(ctx.QueryParam("shipment"))
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	s.sweep(ctx)

	dashboard, err := s.dashboardHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardQuery(shipment))
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, dashboard)
}

// GetQueue handles GET /api/v1/queues/:queue?shipment=.
func (s *Server) GetQueue(ctx echo.Context) error {
	shipment, err := parseShipmentType(ctx.QueryParam("shipment"))
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	query, err := queries.NewGetQueueQuery(ctx.Param("queue"), shipment)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	s.sweep(ctx)

	orders, err := s.queueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetHistory handles GET /api/v1/history.
func (s *Server) GetHistory(ctx echo.Context) error {
	orders, err := s.historyHandler.Handle(ctx.Request().Context(), queries.NewGetHistoryQuery())
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, s.logger, echo.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
	}

	shipment, shipmentErr := parseShipmentType(req.ShipmentType)
	shift, shiftErr := parseShift(req.Shift)
	if err := errors.Join(shipmentErr, shiftErr); err != nil {
		return writeError(ctx, s.logger, err)
	}

	cmd, err := commands.NewCreateOrderCommand(order.Intake{
		InvoiceFolio:  req.InvoiceFolio,
		Salesperson:   req.Salesperson,
		ClientName:    req.ClientName,
		ShipmentType:  shipment,
		DeliveryDate:  s.codec.ParseDate(req.DeliveryDate),
		Shift:         shift,
		Comment:       req.Comment,
		PaymentStatus: req.PaymentStatus,
		Attachments:   req.Attachments,
	})
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	id, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedOrderResponse{ID: id.String()})
}

// UpdateOrder handles PATCH /api/v1/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, s.logger, echo.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
	}

	details := commands.OrderDetails{
		Notes:                   req.Notes,
		Assignee:                req.Assignee,
		FulfillmentModification: req.FulfillmentModification,
	}
	if req.DeliveryDate != nil {
		date := s.codec.ParseDate(*req.DeliveryDate)
		if date == nil {
			return writeError(ctx, s.logger, errs.NewValueIsInvalidError("delivery date"))
		}
		details.DeliveryDate = date
	}
	if req.Shift != nil {
		shift, shiftErr := parseShift(*req.Shift)
		if shiftErr != nil {
			return writeError(ctx, s.logger, shiftErr)
		}
		details.Shift = &shift
	}

	cmd, err := commands.NewUpdateOrderDetailsCommand(id, details)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	if err = s.updateDetailsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChangeStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeStatus(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, s.logger, echo.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
	}
	status, err := parseStatus(req.Status)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AttachFile handles POST /api/v1/orders/:id/attachments with a multipart
// "file" part and an optional "category" field (order or fulfillment).
func (s *Server) AttachFile(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	category, err := parseCategory(ctx.FormValue("category"))
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		return writeError(ctx, s.logger, errs.NewValueIsRequiredErrorWithCause("file", err))
	}
	if header.Size > maxUploadSize {
		return writeError(ctx, s.logger, errs.NewValueIsOutOfRangeError("file size", header.Size, 1, maxUploadSize))
	}
	file, err := header.Open()
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	defer file.Close()

	cmd, err := commands.NewAttachFileCommand(id, category, header.Filename,
		header.Header.Get(echo.HeaderContentType), header.Size, file)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	url, err := s.attachFileHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusCreated, AttachmentResponse{URL: url})
}

// GetAttachments handles GET /api/v1/orders/:id/attachments.
func (s *Server) GetAttachments(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	query, err := queries.NewGetOrderAttachmentsQuery(id)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	result, err := s.attachmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, result)
}

// sweep marks stale orders Delayed. A failed sweep is logged and the read
// goes ahead with whatever the store holds.
func (s *Server) sweep(ctx echo.Context) {
	started := time.Now()
	delayed, err := s.sweepHandler.Handle(ctx.Request().Context(), commands.NewSweepStaleOrdersCommand())
	if err != nil {
		s.logger.WarnContext(ctx.Request().Context(), "staleness sweep failed", "error", err)
		return
	}
	if delayed > 0 {
		s.logger.InfoContext(ctx.Request().Context(), "stale orders delayed",
			"count", delayed, "took", time.Since(started))
	}
}

func orderIDParam(ctx echo.Context) (kernel.OrderID, error) {
	return kernel.OrderIDFromString(ctx.Param("id"))
}
