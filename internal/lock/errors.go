package lock

import "errors"

// Sentinel errors for the lock package.
var (
	// ErrConflict is returned when lock-build is attempted against an
	// unexpired lock held by a different (owner, request_id) without --force.
	ErrConflict = errors.New("build lock is held by another owner")

	// ErrMismatch is returned when unlock-build is attempted by a caller
	// that does not match the current lock's owner (and request id, if given).
	ErrMismatch = errors.New("build lock owner mismatch")
)
