package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Rajan167030/portfolio/internal/github"
	"github.com/Rajan167030/portfolio/internal/service"
)

// GitHubHandler wires HTTP → repo listing and README image resolution.
type GitHubHandler struct {
	repos  service.RepoService
	images service.ReadmeImageService
}

// NewGitHubHandler creates a new GitHubHandler.
func NewGitHubHandler(repos service.RepoService, images service.ReadmeImageService) *GitHubHandler {
	return &GitHubHandler{repos: repos, images: images}
}

// Register mounts GET /github/repos and GET /github/readme-image on the
// supplied router group.
func (h *GitHubHandler) Register(r fiber.Router) {
	r.Get("/github/repos", h.listRepos)
	r.Get("/github/readme-image", h.readmeImage)
}

// listRepos handles GET /github/repos?username=&excludeForks=&excludeArchived=
func (h *GitHubHandler) listRepos(c *fiber.Ctx) error {
	opts := service.ListOptions{
		Username:        c.Query("username"),
		ExcludeForks:    c.QueryBool("excludeForks"),
		ExcludeArchived: c.QueryBool("excludeArchived"),
	}

	repos, err := h.repos.List(c.UserContext(), opts)
	if err != nil {
		// Pass the upstream's own failure status through when we have one.
		status := github.StatusCode(err)
		if status == 0 {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(fiber.Map{
			"error": fmt.Sprintf("GitHub API error: %v", err),
		})
	}

	return c.JSON(repos)
}

// readmeImage handles GET /github/readme-image?owner=&repo=
// Every reachable outcome except a missing parameter answers 200; upstream
// problems degrade to {"imageUrl": null}.
func (h *GitHubHandler) readmeImage(c *fiber.Ctx) error {
	owner := c.Query("owner")
	repo := c.Query("repo")
	if owner == "" || repo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing owner or repo",
		})
	}

	imageURL, found := h.images.ResolveImage(c.UserContext(), owner, repo)
	if !found {
		return c.JSON(fiber.Map{"imageUrl": nil})
	}
	return c.JSON(fiber.Map{"imageUrl": imageURL})
}
