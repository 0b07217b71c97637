package handlers

import (
	"time"

	applog "inkwell/internal/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Register mounts the API surface. Login is throttled per IP; /articles/search
// is registered ahead of /articles/:id so the literal segment wins.
func Register(app *fiber.App, deps *Deps) {
	api := app.Group("/api")

	api.Post("/register", deps.AuthHandler.Register)
	api.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many attempts. Please try again later."})
		},
	}), deps.AuthHandler.Login)
	api.Delete("/delete/:id", RequireAuth(deps.Tokens), RequireAdmin(), deps.AdminHandler.DeleteUser)

	api.Post("/articles", RequireAuth(deps.Tokens), deps.ArticleHandler.Create)
	api.Get("/articles/search", deps.ArticleHandler.Search)
	api.Get("/articles/author/:author_id", deps.ArticleHandler.ByAuthor)
	api.Get("/articles/:id", deps.ArticleHandler.Detail)
	api.Put("/articles/:id", deps.ArticleHandler.Update)
	api.Delete("/articles/:id", deps.ArticleHandler.Delete)

	api.Post("/comments", deps.CommentHandler.Create)
	api.Get("/comments/article/:article_id", deps.CommentHandler.ByArticle)
	api.Put("/comments/:id", deps.CommentHandler.Update)
	api.Delete("/comments/:id", deps.CommentHandler.Delete)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return jsonError(c, fiber.StatusNotFound, "Not found")
	})
}
