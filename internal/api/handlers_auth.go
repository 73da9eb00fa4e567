package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wrenfield/carelog/internal/models"
	"github.com/wrenfield/carelog/internal/services"
)

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return badRequest(c, "invalid credentials")
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return badRequest(c, "weak password")
	}

	role := input.Role
	if role == "" {
		role = models.RolePatient
	}
	if role != models.RolePatient && role != models.RoleClinician {
		return badRequest(c, "invalid role")
	}

	user, err := handler.authService.Register(email, password, role)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyRegistered) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "email already registered"})
		}
		return handler.apiError(c, fiber.StatusInternalServerError, "register", err)
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "register", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": user.ID, "email": user.Email, "role": user.Role})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	user, err := handler.authService.Authenticate(email, password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "login", err)
	}
	return c.JSON(fiber.Map{"id": user.ID, "email": user.Email, "role": user.Role})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	return c.JSON(fiber.Map{"id": user.ID, "email": user.Email, "role": user.Role})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	err := handler.authService.ChangePassword(user.ID, input.CurrentPassword, input.NewPassword)
	switch {
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "current password incorrect"})
	case errors.Is(err, services.ErrWeakPassword):
		return badRequest(c, "weak password")
	case err != nil:
		return handler.apiError(c, fiber.StatusInternalServerError, "change_password", err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
