package services

import (
	"context"

	"github.com/google/uuid"

	"companydocs/domain/dto"
	"companydocs/domain/models"
)

// UserService handles account CRUD. Mutations are self-only: a caller
// targeting another user's id gets NotFound, never confirmation that the id
// exists.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByName(ctx context.Context, name string) (*models.User, error)
	Update(ctx context.Context, callerID, targetID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, callerID, targetID uuid.UUID) error
}
