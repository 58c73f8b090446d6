package web

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/quillhub/quill/pkg/internal/database"
	"github.com/quillhub/quill/pkg/internal/http/exts"
	"github.com/quillhub/quill/pkg/internal/models"
	"github.com/quillhub/quill/pkg/internal/services"
)

func postComment(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such post")
	}
	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such post")
	}

	var data struct {
		Text string `form:"text" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		comments, _ := services.ListComment(item.ID)
		return c.Status(fiber.StatusBadRequest).Render("post_detail", fiber.Map{
			"Post":         item,
			"Comments":     comments,
			"CommentError": "The comment text cannot be empty.",
			"Viewer":       user,
		})
	}

	if _, err := services.NewComment(user, item, data.Text); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/posts/%d", item.ID))
}
