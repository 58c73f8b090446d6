package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillhub/quill/pkg/internal/cache"
	"github.com/quillhub/quill/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL)
	{
		admin.Post("/flush-cache", flushRenderedPages)
	}
}

// flushRenderedPages is the only way to drop the index cache before its TTL
// runs out; nothing flushes it automatically on writes.
func flushRenderedPages(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.Account)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "sign in first")
	}

	if err := cache.FlushRenderedPages(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	log.Info().Uint("account", user.ID).Msg("Rendered page cache flushed.")
	return c.SendStatus(fiber.StatusNoContent)
}
