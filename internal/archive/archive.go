// Package archive implements the operator-driven move-to-archive operation:
// a request (and its claim, if any) is relocated out of the live tree and
// into the archive subtree. It is never invoked implicitly by any other
// package.
package archive

import (
	"github.com/agentops/tri-ops/internal/layout"
	"github.com/agentops/tri-ops/internal/model"
	"github.com/agentops/tri-ops/internal/store"
)

// Manager operates on the archive subtree of a state directory.
type Manager struct {
	Tree layout.Tree
}

// New returns a Manager bound to tree.
func New(tree layout.Tree) *Manager {
	return &Manager{Tree: tree}
}

// Result reports what ArchiveRequest actually moved.
type Result struct {
	RequestArchived bool
	ClaimArchived   bool
}

// ArchiveRequest moves ops/requests/<id>.json to ops/archive/requests/<id>.json,
// and, if present, ops/claims/<id>.json to ops/archive/claims/<id>.json
// (expired or not). A missing request is a no-op: the operation is
// idempotent, mirroring unlock-build's tolerance of absence.
func (m *Manager) ArchiveRequest(id string) (Result, error) {
	var res Result

	var req model.Request
	found, err := store.ReadJSON(m.Tree.RequestFile(id), &req)
	if err != nil {
		return Result{}, err
	}
	if !found {
		return res, nil
	}

	if err := store.WriteJSON(m.Tree.ArchiveRequestFile(id), req); err != nil {
		return Result{}, err
	}
	if err := store.Remove(m.Tree.RequestFile(id)); err != nil {
		return Result{}, err
	}
	res.RequestArchived = true

	var claim model.Claim
	claimFound, err := store.ReadJSON(m.Tree.ClaimFile(id), &claim)
	if err != nil {
		return Result{}, err
	}
	if claimFound {
		if err := store.WriteJSON(m.Tree.ArchiveClaimFile(id), claim); err != nil {
			return Result{}, err
		}
		if err := store.Remove(m.Tree.ClaimFile(id)); err != nil {
			return Result{}, err
		}
		res.ClaimArchived = true
	}

	return res, nil
}
