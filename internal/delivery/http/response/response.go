package response

import (
	"net/http"

	deliverycontext "wardrobe/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Response is the envelope for errors and service-level endpoints. Resource
// endpoints answer with the bare resource instead.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code      string `json:"code"`    // Business error code, e.g., "PROFILE_NOT_FOUND"
	Details   string `json:"details"` // Detailed error description
	RequestID string `json:"request_id,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error writes the error envelope. The request ID, when set, lets a client
// report a failure that can be matched against server logs.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:      errorCode,
			Details:   details,
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}
