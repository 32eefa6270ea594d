package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-builder/api/http/presenter"
	"resume-builder/pkg/resume"
)

// currentUserID reads the user id set by the JWT middleware. The bool is
// false when the locals value is missing or malformed; the caller responds
// with 401 in that case.
func currentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	raw, _ := c.Locals("userId").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func unauthorized(c *fiber.Ctx) error {
	return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
}

// domainError maps use-case errors onto the HTTP taxonomy: missing records
// are 404, foreign records are 403, anything else is a 500.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, resume.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "not found")
	case errors.Is(err, resume.ErrForbidden):
		return presenter.Error(c, http.StatusForbidden, "you do not own this resource")
	default:
		return presenter.Error(c, http.StatusInternalServerError, "internal error")
	}
}

// parseLimitOffset reads pagination from the query string with sane caps.
func parseLimitOffset(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 50)
	if limit < 1 || limit > 100 {
		limit = 50
	}
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
