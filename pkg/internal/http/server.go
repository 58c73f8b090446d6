package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/quillhub/quill/pkg/internal/http/admin"
	"github.com/quillhub/quill/pkg/internal/http/web"
	"github.com/quillhub/quill/pkg/internal/services"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type App struct {
	app *fiber.App
}

func NewServer() *App {
	templates := viper.GetString("templates.root")
	if len(templates) == 0 {
		templates = "./templates"
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Quill",
		AppName:               "Quill v1.0.0",
		Views:                 html.New(templates, ".html"),
		BodyLimit:             8 << 20,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
	})

	app.Use(recover.New())

	staticRoot := viper.GetString("static.root")
	if len(staticRoot) == 0 {
		staticRoot = "./static"
	}
	app.Static("/static", staticRoot)
	app.Static("/media", services.MediaRoot())

	web.MapControllers(app)
	admin.MapControllers(app, "/admin")

	return &App{app}
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting http server.")
	}
}
