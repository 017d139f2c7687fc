package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler reports service liveness and the state of the blog store.
type HealthHandler struct {
	db *mongo.Client // nil when the in-memory store is in use
}

// NewHealthHandler creates a new HealthHandler. db may be nil.
func NewHealthHandler(db *mongo.Client) *HealthHandler {
	return &HealthHandler{db: db}
}

// Register mounts GET /health on the app root.
func (h *HealthHandler) Register(r fiber.Router) {
	r.Get("/health", h.health)
}

func (h *HealthHandler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "ok",
		"blog_store": h.checkStore(c.UserContext()),
	})
}

func (h *HealthHandler) checkStore(ctx context.Context) string {
	if h.db == nil {
		return "memory"
	}
	if err := h.db.Ping(ctx, nil); err != nil {
		return "error"
	}
	return "connected"
}
