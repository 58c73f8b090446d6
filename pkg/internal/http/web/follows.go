package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/quillhub/quill/pkg/internal/models"
	"github.com/quillhub/quill/pkg/internal/services"
)

func doFollow(c *fiber.Ctx) error {
	viewer := c.Locals("user").(models.Account)

	target, err := services.GetAccountWithName(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such account")
	}

	if _, err := services.FollowAccount(viewer, target); err != nil {
		if errors.Is(err, services.ErrFollowSelf) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/profile/" + target.Name)
}

func doUnfollow(c *fiber.Ctx) error {
	viewer := c.Locals("user").(models.Account)

	target, err := services.GetAccountWithName(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such account")
	}

	if err := services.UnfollowAccount(viewer, target); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/profile/" + target.Name)
}

func getFollowFeed(c *fiber.Ctx) error {
	viewer := c.Locals("user").(models.Account)

	page, err := services.GetFeed(viewer, c.Query("page"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Render("follow", fiber.Map{
		"Page":   page,
		"Viewer": viewer,
	})
}
