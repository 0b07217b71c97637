package handlers

import (
	"database/sql"
	"errors"

	applog "inkwell/internal/log"
	"inkwell/internal/repos"
	"inkwell/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Users *repos.UserRepo
}

// DELETE /api/delete/:id — admin-gated; removes the user and everything
// they authored.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	if err := h.Users.DeleteCascade(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return jsonError(c, fiber.StatusNotFound, "User not found")
		}
		applog.Error(c, "admin.users.delete.fail", err, map[string]any{"target_id": id})
		return jsonStoreError(c, "Error deleting user", err)
	}

	applog.Audit(c, "admin.users.delete", map[string]any{"target_id": id})
	return jsonMessage(c, fiber.StatusOK, "User with ID "+id+" deleted.")
}
