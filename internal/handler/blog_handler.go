package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Rajan167030/portfolio/internal/models"
	"github.com/Rajan167030/portfolio/internal/repository"
	"github.com/Rajan167030/portfolio/internal/service"
)

// BlogHandler wires HTTP → BlogService. Public routes serve only published
// posts and approved comments; the admin routes see everything.
type BlogHandler struct {
	svc service.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(svc service.BlogService) *BlogHandler {
	return &BlogHandler{svc: svc}
}

// Register mounts the public blog routes on the supplied router group.
func (h *BlogHandler) Register(r fiber.Router) {
	r.Get("/posts", h.listPublished)
	r.Get("/posts/:slug", h.getBySlug)
	r.Get("/posts/:id/comments", h.listApprovedComments)
	r.Post("/posts/:id/comments", h.addComment)
}

// RegisterAdmin mounts the moderation routes; the caller is expected to wrap
// the group in the admin auth middleware.
func (h *BlogHandler) RegisterAdmin(r fiber.Router) {
	r.Get("/posts", h.listAll)
	r.Post("/posts", h.createPost)
	r.Put("/posts/:id", h.updatePost)
	r.Delete("/posts/:id", h.deletePost)
	r.Get("/posts/:id/comments", h.listAllComments)
	r.Post("/comments/:id/approve", h.approveComment)
	r.Delete("/comments/:id", h.deleteComment)
}

// ---- public ----------------------------------------------------------------

func (h *BlogHandler) listPublished(c *fiber.Ctx) error {
	posts, err := h.svc.ListPosts(c.UserContext(), true)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(posts)
}

func (h *BlogHandler) getBySlug(c *fiber.Ctx) error {
	post, err := h.svc.GetPostBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return blogError(err)
	}
	if !post.Published {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}
	return c.JSON(post)
}

func (h *BlogHandler) listApprovedComments(c *fiber.Ctx) error {
	comments, err := h.svc.ListComments(c.UserContext(), c.Params("id"), true)
	if err != nil {
		return blogError(err)
	}
	return c.JSON(comments)
}

func (h *BlogHandler) addComment(c *fiber.Ctx) error {
	var comment models.Comment
	if err := c.BodyParser(&comment); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid comment payload")
	}
	if comment.Author == "" || comment.Content == "" {
		return fiber.NewError(fiber.StatusBadRequest, "author and content are required")
	}
	comment.PostID = c.Params("id")

	added, err := h.svc.AddComment(c.UserContext(), comment)
	if err != nil {
		return blogError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(added)
}

// ---- admin -----------------------------------------------------------------

func (h *BlogHandler) listAll(c *fiber.Ctx) error {
	posts, err := h.svc.ListPosts(c.UserContext(), false)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(posts)
}

func (h *BlogHandler) createPost(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := c.BodyParser(&post); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post payload")
	}
	if post.Title == "" || post.Slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title and slug are required")
	}

	created, err := h.svc.CreatePost(c.UserContext(), post)
	if err != nil {
		return blogError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *BlogHandler) updatePost(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := c.BodyParser(&post); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post payload")
	}
	post.ID = c.Params("id")

	updated, err := h.svc.UpdatePost(c.UserContext(), post)
	if err != nil {
		return blogError(err)
	}
	return c.JSON(updated)
}

func (h *BlogHandler) deletePost(c *fiber.Ctx) error {
	if err := h.svc.DeletePost(c.UserContext(), c.Params("id")); err != nil {
		return blogError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BlogHandler) listAllComments(c *fiber.Ctx) error {
	comments, err := h.svc.ListComments(c.UserContext(), c.Params("id"), false)
	if err != nil {
		return blogError(err)
	}
	return c.JSON(comments)
}

func (h *BlogHandler) approveComment(c *fiber.Ctx) error {
	if err := h.svc.ApproveComment(c.UserContext(), c.Params("id")); err != nil {
		return blogError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *BlogHandler) deleteComment(c *fiber.Ctx) error {
	if err := h.svc.DeleteComment(c.UserContext(), c.Params("id")); err != nil {
		return blogError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func blogError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
