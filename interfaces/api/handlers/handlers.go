package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"companydocs/domain/apperrors"
	"companydocs/domain/services"
	"companydocs/pkg/logger"
	"companydocs/pkg/utils"
)

type Handlers struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	CompanyHandler *CompanyHandler
	FileHandler    *FileHandler
}

type Services struct {
	AuthService    services.AuthService
	UserService    services.UserService
	CompanyService services.CompanyService
	FileService    services.FileService

	// MaxUploadSize caps multipart uploads, in bytes.
	MaxUploadSize int64
}

func NewHandlers(s *Services) *Handlers {
	return &Handlers{
		AuthHandler:    NewAuthHandler(s.AuthService, s.UserService),
		UserHandler:    NewUserHandler(s.UserService),
		CompanyHandler: NewCompanyHandler(s.CompanyService),
		FileHandler:    NewFileHandler(s.FileService, s.MaxUploadSize),
	}
}

// serviceError maps the error taxonomy to the boundary status codes. Anything
// outside the taxonomy is logged here and answered with a generic 500.
func serviceError(c *fiber.Ctx, err error) error {
	var validationErr *apperrors.ValidationError
	var duplicateErr *apperrors.DuplicateError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return utils.NotFoundResponse(c, "")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Invalid email or password")
	case errors.Is(err, apperrors.ErrUnauthorized):
		return utils.UnauthorizedResponse(c, "")
	case errors.As(err, &validationErr):
		return utils.ValidationErrorResponse(c, validationErr.Fields)
	case errors.As(err, &duplicateErr):
		return utils.ValidationErrorResponse(c, map[string]string{
			duplicateErr.Field: duplicateErr.Error(),
		})
	default:
		logger.ErrorContext(c.UserContext(), "Request failed", "error", err)
		return utils.InternalErrorResponse(c)
	}
}
