package serviceimpl

import (
	"context"
	"mime"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"companydocs/domain/apperrors"
	"companydocs/domain/models"
	"companydocs/domain/ports"
	"companydocs/domain/repositories"
	"companydocs/domain/services"
	"companydocs/pkg/logger"
	"companydocs/pkg/utils"
)

// FileServiceImpl keeps object storage and metadata paired through every
// lifecycle transition. Updates are write-new-then-delete-old: a crash can
// leave an orphaned blob (reclaimed by the sweep) but never a row pointing at
// a missing object.
type FileServiceImpl struct {
	fileRepo       repositories.FileRepository
	companyService services.CompanyService
	storage        ports.StoragePort
	locks          ports.LockPort
}

func NewFileService(fileRepo repositories.FileRepository, companyService services.CompanyService, storage ports.StoragePort, locks ports.LockPort) services.FileService {
	return &FileServiceImpl{
		fileRepo:       fileRepo,
		companyService: companyService,
		storage:        storage,
		locks:          locks,
	}
}

func (s *FileServiceImpl) Upload(ctx context.Context, callerID uuid.UUID, header *multipart.FileHeader, companyID uuid.UUID) (*models.File, error) {
	// the target company must exist and belong to the caller
	if _, err := s.companyService.GetByID(ctx, callerID, companyID); err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open uploaded file", "filename", header.Filename, "error", err)
		return nil, err
	}
	defer src.Close()

	name := utils.SanitizeFileName(header.Filename)
	hashName := utils.GenerateHashName(name)
	path := utils.StoragePath(hashName)
	mimeType := contentType(header)

	logger.InfoContext(ctx, "Uploading file", "user_id", callerID, "company_id", companyID, "path", path, "size", header.Size)

	if _, err := s.storage.Upload(ctx, src, path, header.Size, mimeType); err != nil {
		logger.ErrorContext(ctx, "Storage upload failed", "path", path, "error", err)
		return nil, err
	}

	file := &models.File{
		ID:        uuid.New(),
		CompanyID: companyID,
		UserID:    callerID,
		Name:      name,
		HashName:  hashName,
		Path:      path,
		MimeType:  mimeType,
		Size:      header.Size,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.fileRepo.Create(ctx, file); err != nil {
		logger.ErrorContext(ctx, "Failed to save file record, rolling back blob", "file_id", file.ID, "error", err)
		if delErr := s.storage.Delete(ctx, path); delErr != nil {
			// the sweep reclaims it later
			logger.WarnContext(ctx, "Rollback delete failed, leaving blob to sweep", "path", path, "error", delErr)
		}
		return nil, err
	}

	logger.InfoContext(ctx, "File stored", "file_id", file.ID, "path", path)

	return file, nil
}

func (s *FileServiceImpl) Update(ctx context.Context, callerID, fileID uuid.UUID, header *multipart.FileHeader, companyID uuid.UUID) (*models.File, error) {
	unlock, err := s.locks.Lock(ctx, "file:"+fileID.String())
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := s.getOwned(ctx, callerID, fileID)
	if err != nil {
		return nil, err
	}

	// company may be reassigned, but only to another company the caller owns;
	// uuid.Nil keeps the current one
	if companyID == uuid.Nil {
		companyID = existing.CompanyID
	} else if _, err := s.companyService.GetByID(ctx, callerID, companyID); err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open uploaded file", "filename", header.Filename, "error", err)
		return nil, err
	}
	defer src.Close()

	name := utils.SanitizeFileName(header.Filename)
	hashName := utils.GenerateHashName(name)
	newPath := utils.StoragePath(hashName)
	mimeType := contentType(header)

	if _, err := s.storage.Upload(ctx, src, newPath, header.Size, mimeType); err != nil {
		logger.ErrorContext(ctx, "Storage upload failed", "path", newPath, "error", err)
		return nil, err
	}

	updates := map[string]any{
		"company_id": companyID,
		"name":       name,
		"hash_name":  hashName,
		"path":       newPath,
		"mime_type":  mimeType,
		"size":       header.Size,
		"updated_at": time.Now(),
	}

	ok, err := s.fileRepo.Update(ctx, fileID, updates)
	if err != nil || !ok {
		// metadata unchanged, remove the blob we just wrote
		if delErr := s.storage.Delete(ctx, newPath); delErr != nil {
			logger.WarnContext(ctx, "Rollback delete failed, leaving blob to sweep", "path", newPath, "error", delErr)
		}
		if err != nil {
			logger.ErrorContext(ctx, "Failed to update file record", "file_id", fileID, "error", err)
			return nil, err
		}
		return nil, apperrors.ErrNotFound
	}

	// old blob is now unreferenced; a failure here is recovered by the sweep
	if err := s.storage.Delete(ctx, existing.Path); err != nil {
		logger.WarnContext(ctx, "Failed to delete replaced blob, leaving it to sweep", "path", existing.Path, "error", err)
	}

	logger.InfoContext(ctx, "File replaced", "file_id", fileID, "old_path", existing.Path, "new_path", newPath)

	return s.fileRepo.GetByID(ctx, fileID)
}

func (s *FileServiceImpl) Get(ctx context.Context, callerID, fileID uuid.UUID) (*services.FileWithURL, error) {
	file, err := s.getOwned(ctx, callerID, fileID)
	if err != nil {
		return nil, err
	}

	url, err := s.storage.URL(ctx, file.Path)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to resolve file URL", "file_id", fileID, "path", file.Path, "error", err)
		return nil, err
	}

	return &services.FileWithURL{File: file, URL: url}, nil
}

func (s *FileServiceImpl) ListForCaller(ctx context.Context, callerID uuid.UUID) ([]services.FileWithURL, error) {
	ids, err := s.companyService.OwnedCompanyIDs(ctx, callerID)
	if err != nil {
		return nil, err
	}

	// a user with no companies gets an empty list, never an error and never
	// an unscoped fallback
	if len(ids) == 0 {
		return []services.FileWithURL{}, nil
	}

	files, err := s.fileRepo.ListByCompanyIDs(ctx, ids)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list files", "user_id", callerID, "error", err)
		return nil, err
	}

	out := make([]services.FileWithURL, 0, len(files))
	for _, f := range files {
		url, err := s.storage.URL(ctx, f.Path)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to resolve file URL", "file_id", f.ID, "path", f.Path, "error", err)
			return nil, err
		}
		out = append(out, services.FileWithURL{File: f, URL: url})
	}

	return out, nil
}

func (s *FileServiceImpl) Delete(ctx context.Context, callerID, fileID uuid.UUID) error {
	unlock, err := s.locks.Lock(ctx, "file:"+fileID.String())
	if err != nil {
		return err
	}
	defer unlock()

	file, err := s.getOwned(ctx, callerID, fileID)
	if err != nil {
		return err
	}

	// blob first; if storage refuses we abort with the row intact rather
	// than leaving a row that points at nothing
	if err := s.storage.Delete(ctx, file.Path); err != nil {
		logger.ErrorContext(ctx, "Storage delete failed, aborting", "file_id", fileID, "path", file.Path, "error", err)
		return err
	}

	ok, err := s.fileRepo.Delete(ctx, fileID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete file record", "file_id", fileID, "error", err)
		return err
	}
	if !ok {
		return apperrors.ErrNotFound
	}

	logger.InfoContext(ctx, "File deleted", "file_id", fileID, "path", file.Path)
	return nil
}

// getOwned resolves a file and walks the ownership chain file -> company ->
// caller. Any break in the chain reads as not found.
func (s *FileServiceImpl) getOwned(ctx context.Context, callerID, fileID uuid.UUID) (*models.File, error) {
	file, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if _, err := s.companyService.GetByID(ctx, callerID, file.CompanyID); err != nil {
		return nil, err
	}

	return file, nil
}

func contentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	if ct := mime.TypeByExtension(filepath.Ext(header.Filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
