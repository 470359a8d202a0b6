package claims

import "errors"

// Sentinel errors for the claims package.
var (
	// ErrOwnerMismatch is returned when renew-claim is attempted by an agent
	// that does not hold the current claim, without --force.
	ErrOwnerMismatch = errors.New("claim owner mismatch")
)
