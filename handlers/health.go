package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/uniscope/uniscope-api/catalog"
)

// HandleCheckHealth reports process liveness and how many catalog
// records are loaded.
func HandleCheckHealth(c *fiber.Ctx, store *catalog.Store) error {
	return c.JSON(fiber.Map{
		"status":       "ok",
		"universities": store.Count(),
	})
}
