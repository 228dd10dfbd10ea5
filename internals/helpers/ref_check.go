// file: internals/helpers/ref_check.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===============================
   Identifier & reference checks
=================================*/

// ParseUUIDParam reads a path param and rejects malformed identifiers up front.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+name+" format")
	}
	return id, nil
}

// ParseUUIDQuery reads an optional query filter. Empty string and the legacy
// sentinel "overall" both mean "no filter" (nil).
func ParseUUIDQuery(c *fiber.Ctx, name string) (*uuid.UUID, error) {
	v := strings.TrimSpace(c.Query(name))
	if v == "" || strings.EqualFold(v, "overall") {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+name+" format")
	}
	return &id, nil
}

// RefExists reports whether a row of the given model exists under idColumn=id.
// Every dependent create/update goes through this before writing.
func RefExists(db *gorm.DB, model any, idColumn string, id uuid.UUID) (bool, error) {
	var n int64
	if err := db.Model(model).Where(idColumn+" = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
