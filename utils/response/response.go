package response

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the wire shape of every error response. Message is the
// human-readable text clients display; Code is a stable machine-readable
// kind so clients never have to match on message text.
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error codes shared across handlers.
const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeNotFound      = "NOT_FOUND"
	CodeInternal      = "INTERNAL_ERROR"
	CodeNotConfigured = "NOT_CONFIGURED"
	CodeUpstream      = "UPSTREAM_ERROR"
	CodeTimeout       = "TIMEOUT"
	CodeRateLimited   = "RATE_LIMIT_EXCEEDED"
)

// JSON returns a 200 response with the payload serialized as-is, with
// no envelope around it.
func JSON(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// Error returns an error response with the given status and body.
func Error(c *fiber.Ctx, statusCode int, message string, code string) error {
	return c.Status(statusCode).JSON(ErrorBody{
		Message: message,
		Code:    code,
	})
}

// BadRequest returns a 400 Bad Request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message, CodeBadRequest)
}

// NotFound returns a 404 Not Found response
func NotFound(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return Error(c, fiber.StatusNotFound, message, CodeNotFound)
}

// InternalServerError returns a 500 Internal Server Error response
func InternalServerError(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return Error(c, fiber.StatusInternalServerError, message, CodeInternal)
}

// InternalServerErrorWithCode returns a 500 response carrying a more
// specific error code than the generic internal one.
func InternalServerErrorWithCode(c *fiber.Ctx, message string, code string) error {
	return Error(c, fiber.StatusInternalServerError, message, code)
}
