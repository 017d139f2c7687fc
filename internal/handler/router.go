package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rajan167030/portfolio/internal/middleware"
)

// RegisterRoutes mounts every API surface. Admin blog routes live under
// /api/admin behind the bearer-token guard; /api/login stays outside it so a
// session can actually be opened.
func RegisterRoutes(app *fiber.App,
	gh *GitHubHandler,
	projects *ProjectsHandler,
	blog *BlogHandler,
	admin *AdminHandler,
	email *EmailHandler,
	jwtSecret string,
) {
	api := app.Group("/api")

	gh.Register(api)
	projects.Register(api)
	blog.Register(api)
	email.Register(api)
	admin.Register(api)

	adminAPI := api.Group("/admin", middleware.RequireAdmin(jwtSecret))
	blog.RegisterAdmin(adminAPI)
}
