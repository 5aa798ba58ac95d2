package serverutils

import "github.com/gofiber/fiber/v2"

// AppError is a service-level failure with an HTTP status attached. Anything
// that is not an AppError surfaces as a 500 with a generic message.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: fiber.StatusConflict, Message: message}
}

func NewInternalError(message string) *AppError {
	return &AppError{Code: fiber.StatusInternalServerError, Message: message}
}
