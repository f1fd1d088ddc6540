package ports

import "context"

// LockPort provides per-key mutual exclusion for file lifecycle transitions.
// Two concurrent mutations of the same file id must not interleave their
// blob/metadata steps.
type LockPort interface {
	// Lock blocks until the key is acquired or ctx is done. The returned
	// function releases the lock.
	Lock(ctx context.Context, key string) (func(), error)
}
