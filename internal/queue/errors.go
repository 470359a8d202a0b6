package queue

import "errors"

// Sentinel errors for the queue package. Using sentinels instead of ad-hoc
// fmt.Errorf allows callers to match with errors.Is for reliable error handling.
var (
	// ErrNoProjects is returned when enqueue is attempted with an empty project list.
	ErrNoProjects = errors.New("request_rebuild requires at least one project")

	// ErrNoCandidate is returned when claim-next finds no claimable request.
	ErrNoCandidate = errors.New("no claimable request available")
)
