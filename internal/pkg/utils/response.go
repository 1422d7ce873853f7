package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Gorskiz/historic-places-canada-2/internal/pkg/errors"
)

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// SendError maps an error onto its HTTP status with a structured JSON body.
// Unknown errors become a 500 with the message passed through for diagnostics.
func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	internal := errors.Internal(err)
	return c.Status(internal.StatusCode).JSON(ErrorResponse{
		Error: internal,
	})
}
