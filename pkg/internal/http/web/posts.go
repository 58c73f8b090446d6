package web

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/quillhub/quill/pkg/internal/database"
	"github.com/quillhub/quill/pkg/internal/http/exts"
	"github.com/quillhub/quill/pkg/internal/models"
	"github.com/quillhub/quill/pkg/internal/services"
)

type postForm struct {
	Text  string `form:"text" validate:"required"`
	Group string `form:"group"`
}

func getPostDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such post")
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such post")
	}

	comments, err := services.ListComment(item.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var isAuthor bool
	if viewer, ok := c.Locals("user").(models.Account); ok {
		isAuthor = viewer.ID == item.AuthorID
	}

	return c.Render("post_detail", fiber.Map{
		"Post":     item,
		"Comments": comments,
		"IsAuthor": isAuthor,
		"Viewer":   c.Locals("user"),
	})
}

func renderPostForm(c *fiber.Ctx, status int, item *models.Post, message string) error {
	groups, err := services.ListGroup()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	heading := "New post"
	action := "/create"
	var currentGroup uint
	if item != nil {
		if item.ID > 0 {
			heading = "Edit post"
			action = fmt.Sprintf("/posts/%d/edit", item.ID)
		}
		if item.GroupID != nil {
			currentGroup = *item.GroupID
		}
	}

	return c.Status(status).Render("create_post", fiber.Map{
		"Groups":       groups,
		"Post":         item,
		"Heading":      heading,
		"Action":       action,
		"CurrentGroup": currentGroup,
		"Error":        message,
		"Viewer":       c.Locals("user"),
	})
}

// resolveGroupRef turns the submitted group field into a reference. An empty
// field is a post without a group; an unknown id is a validation failure.
func resolveGroupRef(raw string) (*uint, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid group reference")
	}
	var group models.Group
	if err := database.C.First(&group, id).Error; err != nil {
		return nil, fmt.Errorf("invalid group reference")
	}
	return &group.ID, nil
}

func getCreatePost(c *fiber.Ctx) error {
	return renderPostForm(c, fiber.StatusOK, nil, "")
}

func postCreatePost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	var data postForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return renderPostForm(c, fiber.StatusBadRequest, nil, "The post text cannot be empty.")
	}

	item := models.Post{Text: data.Text}

	groupID, err := resolveGroupRef(data.Group)
	if err != nil {
		return renderPostForm(c, fiber.StatusBadRequest, &item, err.Error())
	}
	item.GroupID = groupID

	if file, err := c.FormFile("image"); err == nil && file != nil {
		path, meta, err := services.StorePostImage(file)
		if err != nil {
			return renderPostForm(c, fiber.StatusBadRequest, &item, err.Error())
		}
		item.Image = &path
		item.ImageMeta = meta
	}

	if _, err := services.NewPost(user, item); err != nil {
		return renderPostForm(c, fiber.StatusBadRequest, &item, err.Error())
	}

	return c.Redirect("/profile/" + user.Name)
}

func getEditPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such post")
	}
	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such post")
	}

	// Only the author edits; everyone else gets the read-only view.
	if item.AuthorID != user.ID {
		return c.Redirect(fmt.Sprintf("/posts/%d", item.ID))
	}

	return renderPostForm(c, fiber.StatusOK, &item, "")
}

func postEditPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such post")
	}
	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such post")
	}
	if item.AuthorID != user.ID {
		return c.Redirect(fmt.Sprintf("/posts/%d", item.ID))
	}

	var data postForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return renderPostForm(c, fiber.StatusBadRequest, &item, "The post text cannot be empty.")
	}
	item.Text = data.Text

	groupID, err := resolveGroupRef(data.Group)
	if err != nil {
		return renderPostForm(c, fiber.StatusBadRequest, &item, err.Error())
	}
	item.GroupID = groupID

	if file, err := c.FormFile("image"); err == nil && file != nil {
		path, meta, err := services.StorePostImage(file)
		if err != nil {
			return renderPostForm(c, fiber.StatusBadRequest, &item, err.Error())
		}
		item.Image = &path
		item.ImageMeta = meta
	}

	if _, err := services.EditPost(item); err != nil {
		return renderPostForm(c, fiber.StatusBadRequest, &item, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/posts/%d", item.ID))
}
