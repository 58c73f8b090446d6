package web

import "github.com/gofiber/fiber/v2"

func MapControllers(app *fiber.App) {
	sessions = newSessionStore()
	app.Use(loadAccount)

	app.Get("/", getIndex)
	app.Get("/group/:slug", getGroupList)
	app.Get("/profile/:name", getProfile)
	app.Get("/posts/:postId", getPostDetail)

	auth := app.Group("/auth")
	{
		auth.Get("/signup", getSignup)
		auth.Post("/signup", postSignup)
		auth.Get("/login", getLogin)
		auth.Post("/login", postLogin)
		auth.Get("/logout", doLogout)
	}

	app.Get("/create", authenticated, getCreatePost)
	app.Post("/create", authenticated, postCreatePost)
	app.Get("/posts/:postId/edit", authenticated, getEditPost)
	app.Post("/posts/:postId/edit", authenticated, postEditPost)
	app.Post("/posts/:postId/comment", authenticated, postComment)

	app.Get("/profile/:name/follow", authenticated, doFollow)
	app.Get("/profile/:name/unfollow", authenticated, doUnfollow)
	app.Get("/follow", authenticated, getFollowFeed)
}
