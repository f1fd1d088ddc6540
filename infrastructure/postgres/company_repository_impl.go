package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"companydocs/domain/apperrors"
	"companydocs/domain/models"
	"companydocs/domain/repositories"
)

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) repositories.CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

func (r *CompanyRepositoryImpl) Create(ctx context.Context, company *models.Company) error {
	err := r.db.WithContext(ctx).Create(company).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// services pre-check each unique column for a precise message; this
		// is the backstop for concurrent inserts
		return &apperrors.DuplicateError{Field: "cnpj, legalName or email"}
	}
	return err
}

func (r *CompanyRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	return r.getBy(ctx, "id = ?", id)
}

func (r *CompanyRepositoryImpl) GetByCnpj(ctx context.Context, cnpj string) (*models.Company, error) {
	return r.getBy(ctx, "cnpj = ?", cnpj)
}

func (r *CompanyRepositoryImpl) GetByLegalName(ctx context.Context, legalName string) (*models.Company, error) {
	return r.getBy(ctx, "legal_name = ?", legalName)
}

func (r *CompanyRepositoryImpl) GetByTradeName(ctx context.Context, tradeName string) (*models.Company, error) {
	return r.getBy(ctx, "trade_name = ?", tradeName)
}

func (r *CompanyRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.Company, error) {
	return r.getBy(ctx, "email = ?", email)
}

func (r *CompanyRepositoryImpl) GetByPhone(ctx context.Context, phone string) (*models.Company, error) {
	return r.getBy(ctx, "phone = ?", phone)
}

func (r *CompanyRepositoryImpl) ListBySize(ctx context.Context, size string) ([]*models.Company, error) {
	var companies []*models.Company
	err := r.db.WithContext(ctx).Where("size = ?", size).Find(&companies).Error
	return companies, err
}

func (r *CompanyRepositoryImpl) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Company, error) {
	var companies []*models.Company
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&companies).Error
	return companies, err
}

func (r *CompanyRepositoryImpl) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Company{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return false, &apperrors.DuplicateError{Field: "cnpj, legalName or email"}
		}
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CompanyRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Company{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CompanyRepositoryImpl) getBy(ctx context.Context, query string, arg any) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).Where(query, arg).First(&company).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &company, nil
}
