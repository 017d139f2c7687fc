package handler

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/Rajan167030/portfolio/internal/middleware"
)

// AdminHandler issues session tokens for the admin panel. The credential
// check is the same fixed username/password the panel has always used; only
// the session flag moved server-side.
type AdminHandler struct {
	username string
	password string
	secret   string
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(username, password, secret string) *AdminHandler {
	return &AdminHandler{username: username, password: password, secret: secret}
}

// Register mounts POST /login on the supplied router group.
func (h *AdminHandler) Register(r fiber.Router) {
	r.Post("/login", h.login)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login handles POST /login
func (h *AdminHandler) login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid login payload")
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) == 1
	if !userOK || !passOK {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid username or password")
	}

	token, err := middleware.IssueAdminToken(h.secret, req.Username)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not issue token")
	}
	return c.JSON(fiber.Map{"token": token})
}
