package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError mengubah error dari handler (biasanya *fiber.Error)
// menjadi response JSON standar. Bukan *fiber.Error → 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// ErrorHandler dipasang di fiber.Config supaya `return fiber.NewError(...)`
// selalu keluar dalam bentuk ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromFiberError(c, err)
}
