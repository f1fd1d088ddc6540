package services

import (
	"context"

	"github.com/google/uuid"

	"companydocs/domain/dto"
	"companydocs/domain/models"
)

// CompanyService handles company CRUD and the ownership-scoping reads used to
// authorize file access. Every single-resource operation checks that the
// caller owns the company; a mismatch is reported as NotFound.
type CompanyService interface {
	Create(ctx context.Context, callerID uuid.UUID, req *dto.CreateCompanyRequest) (*models.Company, error)
	GetByID(ctx context.Context, callerID, id uuid.UUID) (*models.Company, error)
	Update(ctx context.Context, callerID, id uuid.UUID, req *dto.UpdateCompanyRequest) (*models.Company, error)
	Delete(ctx context.Context, callerID, id uuid.UUID) error

	ListForOwner(ctx context.Context, callerID uuid.UUID) ([]*models.Company, error)

	// OwnedCompanyIDs is the authorization-scoping read: the ids of every
	// company the user owns, recomputed on each call.
	OwnedCompanyIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	FindByCnpj(ctx context.Context, callerID uuid.UUID, cnpj string) (*models.Company, error)
	FindByLegalName(ctx context.Context, callerID uuid.UUID, legalName string) (*models.Company, error)
	FindByTradeName(ctx context.Context, callerID uuid.UUID, tradeName string) (*models.Company, error)
	FindByEmail(ctx context.Context, callerID uuid.UUID, email string) (*models.Company, error)
	FindByPhone(ctx context.Context, callerID uuid.UUID, phone string) (*models.Company, error)
	FindBySize(ctx context.Context, callerID uuid.UUID, size string) ([]*models.Company, error)
}
