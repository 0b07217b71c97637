package handlers

import (
	"errors"
	"strings"

	applog "inkwell/internal/log"
	"inkwell/internal/services"
	"inkwell/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Email, password, and name are required")
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return jsonError(c, fiber.StatusBadRequest, "Email, password, and name are required")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return jsonError(c, fiber.StatusBadRequest, "Invalid email format")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "Invalid name")
	}

	u, err := h.Auth.Register(email, name, req.Password)
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		return jsonError(c, fiber.StatusBadRequest, "Email is already in use")
	case err != nil:
		applog.Error(c, "auth.register.fail", err, nil)
		return jsonStoreError(c, "Error registering user", err)
	}

	applog.Audit(c, "auth.register", map[string]any{"user_id": u.ID})
	return c.Status(fiber.StatusCreated).JSON(u.DTO())
}

// POST /api/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Email and password are required")
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return jsonError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	token, u, err := h.Auth.Login(req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email, "reason": "unknown_user"})
		return jsonError(c, fiber.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrBadCreds):
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email})
		return jsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	case err != nil:
		applog.Error(c, "auth.login.fail", err, nil)
		return jsonStoreError(c, "Error logging in user", err)
	}

	applog.Audit(c, "auth.login.success", map[string]any{"user_id": u.ID})
	return c.JSON(fiber.Map{"token": token, "user": u.DTO()})
}
