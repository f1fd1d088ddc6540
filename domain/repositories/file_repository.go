package repositories

import (
	"context"

	"github.com/google/uuid"

	"companydocs/domain/models"
)

type FileRepository interface {
	Create(ctx context.Context, file *models.File) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.File, error)
	GetByPath(ctx context.Context, path string) (*models.File, error)

	// ListByCompanyIDs returns all files whose company is in ids. An empty
	// set yields an empty slice without touching the database.
	ListByCompanyIDs(ctx context.Context, ids []uuid.UUID) ([]*models.File, error)

	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
