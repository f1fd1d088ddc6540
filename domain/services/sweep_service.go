package services

import "context"

// SweepService reclaims storage objects that lost their metadata row, the
// crash window left by write-new-then-delete-old file updates.
type SweepService interface {
	// Run performs one reconciliation pass and returns how many orphaned
	// blobs were deleted.
	Run(ctx context.Context) (int, error)

	// RegisterJob schedules periodic runs.
	RegisterJob() error
}
