package handlers

import (
	"errors"

	"kora/internal/models"
	"kora/internal/services/user"
	"kora/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	created, err := h.userService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUsernameTaken):
			return response.BadRequest(c, "Username already exists")
		case errors.Is(err, user.ErrEmailTaken):
			return response.BadRequest(c, "Email already exists")
		default:
			return response.BadRequest(c, err.Error())
		}
	}

	return response.Created(c, "User created", created.ToResponse())
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to list users")
	}

	out := make([]models.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToResponse())
	}
	return response.Success(c, "Users", out)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid user id")
	}

	u, err := h.userService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.ServerError(c, "Failed to get user")
	}
	return response.Success(c, "User", u.ToResponse())
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid user id")
	}

	if err := h.userService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.ServerError(c, "Failed to delete user")
	}
	return response.Success(c, "User has been deleted", nil)
}
