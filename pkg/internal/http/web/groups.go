package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillhub/quill/pkg/internal/database"
	"github.com/quillhub/quill/pkg/internal/models"
	"github.com/quillhub/quill/pkg/internal/services"
)

func getGroupList(c *fiber.Ctx) error {
	group, err := services.GetGroupWithSlug(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such group")
	}

	tx := services.FilterPostWithGroup(database.C.Model(&models.Post{}), group)
	page, err := services.PaginatePost(tx, c.Query("page"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Render("group_list", fiber.Map{
		"Group":  group,
		"Page":   page,
		"Viewer": c.Locals("user"),
	})
}
