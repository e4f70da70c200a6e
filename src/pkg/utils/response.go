package utils

import (
	"errors"
	httpError "kerjabantu-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

type BaseResponse struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Response writes a successful envelope.
func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(BaseResponse{
		Success: true,
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// ResponseError writes a failed envelope. HttpError and fiber errors keep
// their status, anything else is a 500.
func ResponseError(err error, ctx *fiber.Ctx) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var httpErr *httpError.HttpError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return ctx.Status(code).JSON(BaseResponse{
		Success: false,
		Code:    code,
		Message: message,
		Data:    nil,
	})
}
