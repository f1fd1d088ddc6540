package repositories

import (
	"context"

	"github.com/google/uuid"

	"companydocs/domain/models"
)

// CompanyRepository wraps the companies table. Finders are case-sensitive
// exact matches against a single column; ownership scoping happens in the
// service layer.
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	GetByCnpj(ctx context.Context, cnpj string) (*models.Company, error)
	GetByLegalName(ctx context.Context, legalName string) (*models.Company, error)
	GetByTradeName(ctx context.Context, tradeName string) (*models.Company, error)
	GetByEmail(ctx context.Context, email string) (*models.Company, error)
	GetByPhone(ctx context.Context, phone string) (*models.Company, error)
	ListBySize(ctx context.Context, size string) ([]*models.Company, error)

	// ListByUserID backs the ownership-scoping layer. Recomputed per request.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Company, error)

	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
