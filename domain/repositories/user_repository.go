package repositories

import (
	"context"

	"github.com/google/uuid"

	"companydocs/domain/models"
)

// UserRepository wraps the users table. Update and Delete report false for a
// missing id instead of an error; duplicate unique values surface as
// apperrors.DuplicateError.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByName(ctx context.Context, name string) (*models.User, error)

	// Update applies only the provided columns (partial merge).
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
