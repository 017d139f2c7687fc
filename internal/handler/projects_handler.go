package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Rajan167030/portfolio/internal/explorer"
	"github.com/Rajan167030/portfolio/internal/service"
)

// ProjectsHandler serves the explorer view server-side: it seeds an explorer
// from the repo service, applies the requested filters and returns the card
// list the projects page renders.
type ProjectsHandler struct {
	repos  service.RepoService
	images service.ReadmeImageService
	pinned []string
}

// NewProjectsHandler creates a new ProjectsHandler. pinned is the default
// ordered list of repository names forced to the front of the view.
func NewProjectsHandler(repos service.RepoService, images service.ReadmeImageService, pinned []string) *ProjectsHandler {
	return &ProjectsHandler{repos: repos, images: images, pinned: pinned}
}

// Register mounts GET /projects on the supplied router group.
func (h *ProjectsHandler) Register(r fiber.Router) {
	r.Get("/projects", h.list)
}

// list handles GET /projects?q=&language=&sort=&hideForks=&hideArchived=&pinned=&images=
func (h *ProjectsHandler) list(c *fiber.Ctx) error {
	f := explorer.DefaultFilterState()
	f.Query = c.Query("q")
	f.Language = c.Query("language", "all")
	f.HideForks = c.QueryBool("hideForks", true)
	f.HideArchived = c.QueryBool("hideArchived", true)
	if s := c.Query("sort"); s != "" {
		f.Sort = explorer.SortKey(s)
	}

	pinned := h.pinned
	if p := c.Query("pinned"); p != "" {
		pinned = strings.Split(p, ",")
	}

	username := c.Query("username")
	seed := h.repos.ListOrEmpty(c.UserContext(), service.ListOptions{
		Username:        username,
		ExcludeForks:    f.HideForks,
		ExcludeArchived: f.HideArchived,
	})

	ex := explorer.New(h.repos, h.images, username, pinned, seed)
	ex.SetFilter(f)

	cards := ex.Cards()
	if c.QueryBool("images") {
		ex.ResolveImages(c.UserContext(), cards)
	}

	resp := fiber.Map{
		"total":     len(cards),
		"languages": ex.Languages(),
		"projects":  cards,
	}
	if len(cards) == 0 {
		resp["message"] = explorer.EmptyMessage
	}
	return c.JSON(resp)
}
