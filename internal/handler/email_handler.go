package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/Rajan167030/portfolio/internal/models"
	"github.com/Rajan167030/portfolio/internal/service"
)

// EmailHandler is the consolidated email endpoint: one POST route
// dispatching on the "action" field of the body.
type EmailHandler struct {
	notifier service.Notifier
}

// NewEmailHandler creates a new EmailHandler.
func NewEmailHandler(notifier service.Notifier) *EmailHandler {
	return &EmailHandler{notifier: notifier}
}

// Register mounts POST /email on the supplied router group.
func (h *EmailHandler) Register(r fiber.Router) {
	r.Post("/email", h.send)
}

// send handles POST /email
func (h *EmailHandler) send(c *fiber.Ctx) error {
	var ev models.Notification
	if err := c.BodyParser(&ev); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid action",
		})
	}

	msg, err := h.notifier.Notify(c.UserContext(), ev)
	if err != nil {
		if errors.Is(err, service.ErrUnknownAction) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid action",
			})
		}
		log.Error().Err(err).Msg("email service error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Email service failed",
		})
	}

	return c.JSON(fiber.Map{"success": true, "message": msg})
}
