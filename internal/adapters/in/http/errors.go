package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"orderdesk/internal/pkg/errs"
)

// statusOf maps the error family to an HTTP status.
func statusOf(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errs.IsValidation(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAdapter):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as an ErrorResponse. Server-side failures are
// logged and their details withheld from the client.
func writeError(ctx echo.Context, logger *slog.Logger, err error) error {
	code := statusOf(err)
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	}

	if code >= http.StatusInternalServerError {
		logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"status", code,
			"error", err,
		)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
