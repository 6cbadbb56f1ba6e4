package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"yorum-servisi/internal/domain"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

// ErrorHandler maps domain errors to HTTP responses. Anything it does
// not recognize (including transient store failures) surfaces as a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	errorCode := "INTERNAL_ERROR"
	field := ""

	var validationErr *domain.ValidationError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &validationErr):
		code = fiber.StatusUnprocessableEntity
		errorCode = "VALIDATION_ERROR"
		message = validationErr.Message
		field = validationErr.Field
	case errors.Is(err, domain.ErrCommentNotFound):
		code = fiber.StatusNotFound
		errorCode = "NOT_FOUND"
		message = err.Error()
	case errors.Is(err, domain.ErrCommentExists), errors.Is(err, domain.ErrAlreadyLiked):
		code = fiber.StatusConflict
		errorCode = "CONFLICT"
		message = err.Error()
	case errors.Is(err, domain.ErrForbidden):
		code = fiber.StatusForbidden
		errorCode = "FORBIDDEN"
		message = err.Error()
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
		switch code {
		case fiber.StatusBadRequest:
			errorCode = "BAD_REQUEST"
		case fiber.StatusUnauthorized:
			errorCode = "UNAUTHORIZED"
		case fiber.StatusForbidden:
			errorCode = "FORBIDDEN"
		case fiber.StatusNotFound:
			errorCode = "NOT_FOUND"
		case fiber.StatusConflict:
			errorCode = "CONFLICT"
		case fiber.StatusUnprocessableEntity:
			errorCode = "VALIDATION_ERROR"
		}
	}

	traceID := uuid.New().String()[:8]

	return c.Status(code).JSON(ErrorResponse{
		Code:    errorCode,
		Message: message,
		Field:   field,
		TraceID: traceID,
	})
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusForbidden, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

func Conflict(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusConflict, message)
}
