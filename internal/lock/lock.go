// Package lock implements the single, well-known build lock: at most one
// unexpired holder globally, reclaimable by the same (owner, request_id)
// pair, stealable with --force, and advisory — nothing at the filesystem
// level stops a misbehaving caller from building without it.
package lock

import (
	"github.com/rs/zerolog"

	"github.com/agentops/tri-ops/internal/layout"
	"github.com/agentops/tri-ops/internal/lease"
	"github.com/agentops/tri-ops/internal/logging"
	"github.com/agentops/tri-ops/internal/model"
	"github.com/agentops/tri-ops/internal/store"
	"github.com/agentops/tri-ops/internal/timeid"
)

// Manager operates on the single lock file of a state directory.
type Manager struct {
	Tree   layout.Tree
	logger zerolog.Logger
}

// New returns a Manager bound to tree.
func New(tree layout.Tree) *Manager {
	return &Manager{Tree: tree, logger: logging.WithComponent("lock")}
}

// AcquireInput carries a lock-build or renew-lock request; the two commands
// share this exact semantics, per the spec.
type AcquireInput struct {
	Owner        string
	RequestID    string
	LeaseSeconds int
	Force        bool
}

// Acquire takes, idempotently refreshes, or steals the build lock. It
// returns ErrConflict if an unexpired lock is held by a different
// (owner, request_id) pair and Force is not set.
func (m *Manager) Acquire(in AcquireInput) (model.Lock, error) {
	path := m.Tree.LockFile()

	var existing model.Lock
	found, _ := store.ReadJSON(path, &existing)
	if found && !lease.IsExpired(existing.LeaseExpiresUTC) {
		sameHolder := existing.Owner == in.Owner && existing.RequestID == in.RequestID
		if !sameHolder && !in.Force {
			m.logger.Warn().
				Str("held_by", existing.Owner).
				Str("requested_by", in.Owner).
				Msg("build lock conflict")
			return model.Lock{}, ErrConflict
		}
		if !sameHolder && in.Force {
			m.logger.Warn().
				Str("stolen_from", existing.Owner).
				Str("new_owner", in.Owner).
				Msg("build lock stolen with --force")
		}
	}

	newLock := model.Lock{
		Owner:           in.Owner,
		RequestID:       in.RequestID,
		UTC:             timeid.NowUTCString(),
		LeaseSeconds:    in.LeaseSeconds,
		LeaseExpiresUTC: timeid.FormatUTC(timeid.Expiry(in.LeaseSeconds)),
	}
	if err := store.WriteJSON(path, newLock); err != nil {
		return model.Lock{}, err
	}
	return newLock, nil
}

// ReleaseInput carries an unlock-build request.
type ReleaseInput struct {
	Owner     string
	RequestID string // optional; empty means "don't check"
	Force     bool
}

// Release deletes the lock file. A missing lock file is success (the lock
// is already free). Unless Force, the caller must match the current
// owner, and the request id if one was supplied.
func (m *Manager) Release(in ReleaseInput) error {
	path := m.Tree.LockFile()

	var existing model.Lock
	found, _ := store.ReadJSON(path, &existing)
	if !found {
		return nil
	}

	if !in.Force {
		if existing.Owner != in.Owner {
			return ErrMismatch
		}
		if in.RequestID != "" && existing.RequestID != in.RequestID {
			return ErrMismatch
		}
	} else if existing.Owner != in.Owner {
		m.logger.Warn().
			Str("held_by", existing.Owner).
			Str("released_by", in.Owner).
			Msg("build lock force-released by non-owner")
	}

	return store.Remove(path)
}

// Status reports the current lock record and whether it represents an
// unexpired, held lock. An expired lock is reported as not-held but is left
// in place; removing it is the garbage collector's job.
func (m *Manager) Status() (model.Lock, bool, error) {
	path := m.Tree.LockFile()
	var existing model.Lock
	found, err := store.ReadJSON(path, &existing)
	if err != nil {
		return model.Lock{}, false, err
	}
	if !found {
		return model.Lock{}, false, nil
	}
	if lease.IsExpired(existing.LeaseExpiresUTC) {
		return existing, false, nil
	}
	return existing, true, nil
}
