package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "wardrobe/internal/delivery/context"
	"wardrobe/internal/delivery/http/response"
	domainerrors "wardrobe/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Every 401 carries
// a Bearer challenge.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, errorCode, message, details := m.classify(err, c)
	if status == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = response.Error(c, status, errorCode, message, details)
	}
	if err != nil {
		m.log(c).Error("Failed to write error response", slog.Any("error", err))
	}
}

func (m *ErrorMiddleware) classify(err error, c echo.Context) (int, string, string, string) {
	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}

		return appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details()
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprint(httpErr.Message)

		return httpErr.Code, "HTTP_ERROR", message, message
	}

	// Default to internal error. The cause is logged but never sent to the client.
	m.logUnhandled(c, err)

	internal := domainerrors.ErrInternalError

	return internal.HTTPCode(), internal.ErrorCode(), internal.Message(), internal.Details()
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
