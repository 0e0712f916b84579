package server

import (
	"strconv"

	"devlink/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseID parses a numeric route parameter. Malformed values are reported
// as a not-found for the named resource so that /posts/abc and /posts/999
// behave the same way.
func parseID(c *fiber.Ctx, param, resource string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewNotFoundError(resource, raw)
	}
	return uint(id), nil
}

// statusForError maps an application error code to an HTTP status.
// notFoundStatus lets profile routes report missing resources as 400
// while post routes report them as 404.
func statusForError(err error, notFoundStatus int) int {
	switch models.ErrorCode(err) {
	case models.CodeValidation, models.CodeConflict:
		return fiber.StatusBadRequest
	case models.CodeUnauthorized:
		return fiber.StatusUnauthorized
	case models.CodeNotFound:
		return notFoundStatus
	case models.CodeUpstream:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// fail renders err with the status derived from its code.
func fail(c *fiber.Ctx, err error, notFoundStatus int) error {
	return models.RespondWithError(c, statusForError(err, notFoundStatus), err)
}

// userID returns the authenticated user id placed in locals by AuthRequired.
func userID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}
