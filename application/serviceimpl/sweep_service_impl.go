package serviceimpl

import (
	"context"
	"errors"
	"time"

	"companydocs/domain/apperrors"
	"companydocs/domain/ports"
	"companydocs/domain/repositories"
	"companydocs/domain/services"
	"companydocs/pkg/logger"
	"companydocs/pkg/scheduler"
	"companydocs/pkg/utils"
)

const sweepRunTimeout = 10 * time.Minute

type SweepConfig struct {
	Cron  string        // default hourly
	Grace time.Duration // objects younger than this are skipped
}

// SweepServiceImpl deletes blobs under the files/ prefix that no metadata row
// references. Such orphans appear when a crash lands between the metadata
// update and the old-blob delete, or when a create rollback fails.
type SweepServiceImpl struct {
	config    SweepConfig
	fileRepo  repositories.FileRepository
	storage   ports.StoragePort
	scheduler scheduler.EventScheduler
}

func NewSweepService(config SweepConfig, fileRepo repositories.FileRepository, storage ports.StoragePort, eventScheduler scheduler.EventScheduler) services.SweepService {
	if config.Cron == "" {
		config.Cron = "0 * * * *"
	}
	if config.Grace == 0 {
		config.Grace = time.Hour
	}

	return &SweepServiceImpl{
		config:    config,
		fileRepo:  fileRepo,
		storage:   storage,
		scheduler: eventScheduler,
	}
}

func (s *SweepServiceImpl) Run(ctx context.Context) (int, error) {
	objects, err := s.storage.List(ctx, utils.FilesPrefix())
	if err != nil {
		logger.ErrorContext(ctx, "Sweep listing failed", "error", err)
		return 0, err
	}

	deleted := 0
	for _, obj := range objects {
		// the grace period keeps uploads in flight out of reach
		if time.Since(obj.LastModified) < s.config.Grace {
			continue
		}

		_, err := s.fileRepo.GetByPath(ctx, obj.Path)
		if err == nil {
			continue // referenced, keep
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.ErrorContext(ctx, "Sweep metadata lookup failed", "path", obj.Path, "error", err)
			return deleted, err
		}

		if err := s.storage.Delete(ctx, obj.Path); err != nil {
			logger.WarnContext(ctx, "Sweep failed to delete orphan", "path", obj.Path, "error", err)
			continue
		}

		logger.InfoContext(ctx, "Orphaned blob reclaimed", "path", obj.Path, "size", obj.Size)
		deleted++
	}

	return deleted, nil
}

func (s *SweepServiceImpl) RegisterJob() error {
	return s.scheduler.AddJob("storage_sweep", s.config.Cron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepRunTimeout)
		defer cancel()

		deleted, err := s.Run(ctx)
		if err != nil {
			logger.Error("Storage sweep run failed", "error", err)
			return
		}
		if deleted > 0 {
			logger.Info("Storage sweep completed", "orphans_deleted", deleted)
		}
	})
}
