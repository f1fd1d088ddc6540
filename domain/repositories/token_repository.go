package repositories

import (
	"context"

	"github.com/google/uuid"

	"companydocs/domain/models"
)

type TokenRepository interface {
	Create(ctx context.Context, token *models.AuthToken) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AuthToken, error)

	// DeleteByUserID revokes every session the user holds.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
