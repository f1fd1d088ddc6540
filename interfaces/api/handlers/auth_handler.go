package handlers

import (
	"github.com/gofiber/fiber/v2"

	"companydocs/domain/dto"
	"companydocs/domain/services"
	"companydocs/pkg/logger"
	"companydocs/pkg/utils"
)

type AuthHandler struct {
	authService services.AuthService
	userService services.UserService
}

func NewAuthHandler(authService services.AuthService, userService services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// Register creates a new account. The endpoint is public; the created user
// still has to log in to obtain a token.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	user, err := h.userService.Register(c.UserContext(), &req)
	if err != nil {
		return serviceError(c, err)
	}

	logger.InfoContext(c.UserContext(), "User registered", "userId", user.ID)
	return utils.CreatedResponse(c, dto.UserToResponse(user))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	token, user, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return serviceError(c, err)
	}

	logger.InfoContext(c.UserContext(), "User logged in", "userId", user.ID)
	return utils.SuccessResponse(c, dto.LoginResponse{
		Token: token,
		User:  dto.UserToResponse(user),
	})
}

// Logout revokes every active token of the caller, ending all sessions.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.authService.Logout(c.UserContext(), user.ID); err != nil {
		return serviceError(c, err)
	}

	logger.InfoContext(c.UserContext(), "User logged out", "userId", user.ID)
	return utils.NoContentResponse(c)
}

// Me returns the authenticated user's own profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	current, err := h.userService.GetUser(c.UserContext(), user.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToResponse(current))
}
