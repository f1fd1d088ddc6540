package serviceimpl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"companydocs/domain/apperrors"
	"companydocs/domain/dto"
	"companydocs/domain/models"
	"companydocs/domain/repositories"
	"companydocs/domain/services"
	"companydocs/pkg/logger"
)

type CompanyServiceImpl struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyService(companyRepo repositories.CompanyRepository) services.CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo}
}

func (s *CompanyServiceImpl) Create(ctx context.Context, callerID uuid.UUID, req *dto.CreateCompanyRequest) (*models.Company, error) {
	if !models.IsValidCompanySize(req.Size) {
		return nil, sizeValidationError()
	}

	// precise duplicate messages before hitting the unique indexes
	if existing, _ := s.companyRepo.GetByCnpj(ctx, req.Cnpj); existing != nil {
		return nil, apperrors.NewValidationError("cnpj", "cnpj is already taken")
	}
	if existing, _ := s.companyRepo.GetByLegalName(ctx, req.LegalName); existing != nil {
		return nil, apperrors.NewValidationError("legalName", "legal name is already taken")
	}
	if existing, _ := s.companyRepo.GetByEmail(ctx, req.Email); existing != nil {
		return nil, apperrors.NewValidationError("email", "email is already taken")
	}

	company := &models.Company{
		ID:        uuid.New(),
		UserID:    callerID,
		Cnpj:      req.Cnpj,
		LegalName: req.LegalName,
		TradeName: req.TradeName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Size:      req.Size,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		logger.ErrorContext(ctx, "Failed to create company", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Company created", "company_id", company.ID, "user_id", callerID)

	return company, nil
}

func (s *CompanyServiceImpl) GetByID(ctx context.Context, callerID, id uuid.UUID) (*models.Company, error) {
	return s.getOwned(ctx, callerID, id)
}

func (s *CompanyServiceImpl) Update(ctx context.Context, callerID, id uuid.UUID, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	if req.Size != "" && !models.IsValidCompanySize(req.Size) {
		// rejected before any row is touched
		return nil, sizeValidationError()
	}

	if _, err := s.getOwned(ctx, callerID, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Cnpj != "" {
		updates["cnpj"] = req.Cnpj
	}
	if req.LegalName != "" {
		updates["legal_name"] = req.LegalName
	}
	if req.TradeName != "" {
		updates["trade_name"] = req.TradeName
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.Size != "" {
		updates["size"] = req.Size
	}
	// user_id is never part of the update set: ownership is immutable

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		ok, err := s.companyRepo.Update(ctx, id, updates)
		if err != nil {
			if apperrors.IsDuplicate(err) {
				return nil, &apperrors.ValidationError{Fields: map[string]string{
					"_": err.Error(),
				}}
			}
			logger.ErrorContext(ctx, "Failed to update company", "company_id", id, "error", err)
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrNotFound
		}
	}

	return s.companyRepo.GetByID(ctx, id)
}

func (s *CompanyServiceImpl) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	if _, err := s.getOwned(ctx, callerID, id); err != nil {
		return err
	}

	ok, err := s.companyRepo.Delete(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete company", "company_id", id, "error", err)
		return err
	}
	if !ok {
		return apperrors.ErrNotFound
	}

	logger.InfoContext(ctx, "Company deleted", "company_id", id)
	return nil
}

func (s *CompanyServiceImpl) ListForOwner(ctx context.Context, callerID uuid.UUID) ([]*models.Company, error) {
	return s.companyRepo.ListByUserID(ctx, callerID)
}

func (s *CompanyServiceImpl) OwnedCompanyIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	companies, err := s.companyRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(companies))
	for _, c := range companies {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func (s *CompanyServiceImpl) FindByCnpj(ctx context.Context, callerID uuid.UUID, cnpj string) (*models.Company, error) {
	return s.guardOwner(ctx, callerID)(s.companyRepo.GetByCnpj(ctx, cnpj))
}

func (s *CompanyServiceImpl) FindByLegalName(ctx context.Context, callerID uuid.UUID, legalName string) (*models.Company, error) {
	return s.guardOwner(ctx, callerID)(s.companyRepo.GetByLegalName(ctx, legalName))
}

func (s *CompanyServiceImpl) FindByTradeName(ctx context.Context, callerID uuid.UUID, tradeName string) (*models.Company, error) {
	return s.guardOwner(ctx, callerID)(s.companyRepo.GetByTradeName(ctx, tradeName))
}

func (s *CompanyServiceImpl) FindByEmail(ctx context.Context, callerID uuid.UUID, email string) (*models.Company, error) {
	return s.guardOwner(ctx, callerID)(s.companyRepo.GetByEmail(ctx, email))
}

func (s *CompanyServiceImpl) FindByPhone(ctx context.Context, callerID uuid.UUID, phone string) (*models.Company, error) {
	return s.guardOwner(ctx, callerID)(s.companyRepo.GetByPhone(ctx, phone))
}

func (s *CompanyServiceImpl) FindBySize(ctx context.Context, callerID uuid.UUID, size string) ([]*models.Company, error) {
	if !models.IsValidCompanySize(size) {
		return nil, sizeValidationError()
	}

	companies, err := s.companyRepo.ListBySize(ctx, size)
	if err != nil {
		return nil, err
	}

	// scoped listing: only the caller's companies come back
	owned := make([]*models.Company, 0, len(companies))
	for _, c := range companies {
		if c.UserID == callerID {
			owned = append(owned, c)
		}
	}
	return owned, nil
}

// getOwned resolves a company the caller owns. A company owned by someone
// else is reported as not found so existence never leaks across tenants.
func (s *CompanyServiceImpl) getOwned(ctx context.Context, callerID, id uuid.UUID) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if company.UserID != callerID {
		logger.WarnContext(ctx, "Cross-tenant company access blocked", "company_id", id, "caller_id", callerID)
		return nil, apperrors.ErrNotFound
	}

	return company, nil
}

// guardOwner wraps a finder result with the same ownership check as getOwned.
func (s *CompanyServiceImpl) guardOwner(ctx context.Context, callerID uuid.UUID) func(*models.Company, error) (*models.Company, error) {
	return func(company *models.Company, err error) (*models.Company, error) {
		if err != nil {
			return nil, err
		}
		if company.UserID != callerID {
			logger.WarnContext(ctx, "Cross-tenant company access blocked", "company_id", company.ID, "caller_id", callerID)
			return nil, apperrors.ErrNotFound
		}
		return company, nil
	}
}

func sizeValidationError() *apperrors.ValidationError {
	return apperrors.NewValidationError("size",
		fmt.Sprintf("size must be one of %s", strings.Join(models.CompanySizes, ", ")))
}
