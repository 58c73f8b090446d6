package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/quillhub/quill/pkg/internal/http/exts"
	"github.com/quillhub/quill/pkg/internal/models"
	"github.com/quillhub/quill/pkg/internal/services"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var sessions *session.Store

func newSessionStore() *session.Store {
	expiration := viper.GetDuration("session.expiration")
	if expiration <= 0 {
		expiration = 72 * time.Hour
	}
	return session.New(session.Config{
		Expiration:     expiration,
		CookieHTTPOnly: true,
	})
}

// loadAccount resolves the session cookie into a models.Account at
// c.Locals("user"); anonymous requests simply pass through.
func loadAccount(c *fiber.Ctx) error {
	sess, err := sessions.Get(c)
	if err != nil {
		return c.Next()
	}

	if uid, ok := sess.Get("account_id").(uint); ok {
		if user, err := services.GetAccountWithID(uid); err == nil {
			c.Locals("user", user)
		}
	}

	return c.Next()
}

// authenticated guards mutation routes; anonymous viewers are redirected to
// the login prompt and no mutation is attempted.
func authenticated(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.Account); !ok {
		return c.Redirect("/auth/login")
	}
	return c.Next()
}

func getLogin(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{})
}

func postLogin(c *fiber.Ctx) error {
	var data struct {
		Name     string `form:"name" validate:"required"`
		Password string `form:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{
			"Error": "Both name and password are required.",
		})
	}

	user, err := services.AuthAccount(data.Name, data.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Error": err.Error(),
		})
	}

	sess, err := sessions.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	sess.Set("account_id", user.ID)
	if err := sess.Save(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	log.Info().Uint("account", user.ID).Msg("Account signed in.")
	return c.Redirect("/")
}

func getSignup(c *fiber.Ctx) error {
	return c.Render("signup", fiber.Map{})
}

func postSignup(c *fiber.Ctx) error {
	var data struct {
		Name     string `form:"name" validate:"required,alphanum,min=3,max=30"`
		Nick     string `form:"nick" validate:"required,max=80"`
		Email    string `form:"email" validate:"required,email"`
		Password string `form:"password" validate:"required,min=8"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("signup", fiber.Map{
			"Error": "Please check the highlighted fields and try again.",
		})
	}

	user, err := services.NewAccount(data.Name, data.Nick, data.Email, data.Password)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).Render("signup", fiber.Map{
			"Error": err.Error(),
		})
	}

	log.Info().Uint("account", user.ID).Str("name", user.Name).Msg("New account registered.")
	return c.Redirect("/auth/login")
}

func doLogout(c *fiber.Ctx) error {
	if sess, err := sessions.Get(c); err == nil {
		_ = sess.Destroy()
	}
	return c.Redirect("/")
}
