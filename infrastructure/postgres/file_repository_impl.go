package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"companydocs/domain/models"
	"companydocs/domain/repositories"
)

type FileRepositoryImpl struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) repositories.FileRepository {
	return &FileRepositoryImpl{db: db}
}

func (r *FileRepositoryImpl) Create(ctx context.Context, file *models.File) error {
	return r.db.WithContext(ctx).Create(file).Error
}

func (r *FileRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.File, error) {
	var file models.File
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&file).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &file, nil
}

func (r *FileRepositoryImpl) GetByPath(ctx context.Context, path string) (*models.File, error) {
	var file models.File
	err := r.db.WithContext(ctx).Where("path = ?", path).First(&file).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &file, nil
}

func (r *FileRepositoryImpl) ListByCompanyIDs(ctx context.Context, ids []uuid.UUID) ([]*models.File, error) {
	if len(ids) == 0 {
		return []*models.File{}, nil
	}

	var files []*models.File
	err := r.db.WithContext(ctx).Where("company_id IN ?", ids).Find(&files).Error
	return files, err
}

func (r *FileRepositoryImpl) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.File{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *FileRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.File{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
