package services

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"companydocs/domain/models"
)

// FileWithURL pairs a metadata row with a freshly resolved access URL.
type FileWithURL struct {
	File *models.File
	URL  string
}

// FileService orchestrates object storage and metadata together so the two
// stay paired: no orphaned blob outliving its row, no row without a
// successfully written blob. Reads and single-file mutations are scoped to
// the caller's companies.
type FileService interface {
	Upload(ctx context.Context, callerID uuid.UUID, header *multipart.FileHeader, companyID uuid.UUID) (*models.File, error)
	Update(ctx context.Context, callerID, fileID uuid.UUID, header *multipart.FileHeader, companyID uuid.UUID) (*models.File, error)
	Get(ctx context.Context, callerID, fileID uuid.UUID) (*FileWithURL, error)
	ListForCaller(ctx context.Context, callerID uuid.UUID) ([]FileWithURL, error)
	Delete(ctx context.Context, callerID, fileID uuid.UUID) error
}
