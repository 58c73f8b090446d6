package web

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/quillhub/quill/pkg/internal/cache"
	"github.com/quillhub/quill/pkg/internal/database"
	"github.com/quillhub/quill/pkg/internal/models"
	"github.com/quillhub/quill/pkg/internal/services"
)

// indexCacheKey is keyed on the resolved page number, not the raw query
// value, so every spelling of the same page shares one cached rendering.
func indexCacheKey(number int) string {
	return fmt.Sprintf("page:index#%d", number)
}

// getIndex serves the landing page from the rendered-page cache when it can.
// The template is deliberately viewer-agnostic so a single cached rendering
// serves everyone; post writes do not flush it (see the cache package).
func getIndex(c *fiber.Ctx) error {
	size := services.PageSize()

	count, err := services.CountPost(database.C.Model(&models.Post{}))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	number, offset, totalPages := services.PlanPage(count, c.Query("page"), size)
	key := indexCacheKey(number)

	if content, ok := cache.GetRenderedPage(key); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(content)
	}

	items, err := services.ListPost(database.C.Model(&models.Post{}), size, offset, services.PostDefaultOrder)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := c.Render("index", fiber.Map{
		"Page": services.PostPage{
			Items:      items,
			Count:      count,
			Number:     number,
			TotalPages: totalPages,
			Size:       size,
		},
	}); err != nil {
		return err
	}

	// fasthttp reuses response buffers between requests, so cache a copy.
	cache.SetRenderedPage(key, append([]byte(nil), c.Response().Body()...))
	return nil
}
