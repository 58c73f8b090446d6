package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillhub/quill/pkg/internal/database"
	"github.com/quillhub/quill/pkg/internal/models"
	"github.com/quillhub/quill/pkg/internal/services"
)

func getProfile(c *fiber.Ctx) error {
	account, err := services.GetAccountWithName(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such account")
	}

	tx := services.FilterPostWithAuthor(database.C.Model(&models.Post{}), account.ID)
	page, err := services.PaginatePost(tx, c.Query("page"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var following bool
	if viewer, ok := c.Locals("user").(models.Account); ok {
		following = services.IsFollowing(viewer, account)
	}

	return c.Render("profile", fiber.Map{
		"Account":        account,
		"Page":           page,
		"FollowerCount":  services.CountFollowers(account),
		"FollowingCount": services.CountFollowing(account),
		"Following":      following,
		"Viewer":         c.Locals("user"),
	})
}
