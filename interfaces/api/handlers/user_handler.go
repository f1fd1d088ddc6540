package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"companydocs/domain/dto"
	"companydocs/domain/services"
	"companydocs/pkg/logger"
	"companydocs/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	user, err := h.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToResponse(user))
}

func (h *UserHandler) GetUserByEmail(c *fiber.Ctx) error {
	user, err := h.userService.FindByEmail(c.UserContext(), c.Params("email"))
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToResponse(user))
}

func (h *UserHandler) GetUserByName(c *fiber.Ctx) error {
	user, err := h.userService.FindByName(c.UserContext(), c.Params("name"))
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToResponse(user))
}

// UpdateUser applies a partial update. Targeting another user's id is
// answered with 404.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	caller, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	user, err := h.userService.Update(c.UserContext(), caller.ID, id, &req)
	if err != nil {
		return serviceError(c, err)
	}

	logger.InfoContext(c.UserContext(), "User updated", "userId", user.ID)
	return utils.SuccessResponse(c, dto.UserToResponse(user))
}

// DeleteUser removes the caller's own account and, through cascades, their
// companies, file metadata and tokens.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	caller, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	if err := h.userService.Delete(c.UserContext(), caller.ID, id); err != nil {
		return serviceError(c, err)
	}

	logger.InfoContext(c.UserContext(), "User deleted", "userId", id)
	return utils.NoContentResponse(c)
}
