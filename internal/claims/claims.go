// Package claims implements renewal and ownership enforcement for the
// per-request lease record created by queue.ClaimNext. Creation of the
// initial claim lives in the queue package; this package only ever
// overwrites an existing (or absent) claim file.
package claims

import (
	"github.com/rs/zerolog"

	"github.com/agentops/tri-ops/internal/layout"
	"github.com/agentops/tri-ops/internal/logging"
	"github.com/agentops/tri-ops/internal/model"
	"github.com/agentops/tri-ops/internal/store"
	"github.com/agentops/tri-ops/internal/timeid"
)

// Registry operates on the claim subtree of a single state directory.
type Registry struct {
	Tree   layout.Tree
	logger zerolog.Logger
}

// New returns a Registry bound to tree.
func New(tree layout.Tree) *Registry {
	return &Registry{Tree: tree, logger: logging.WithComponent("claims")}
}

// RenewInput carries a renew-claim request.
type RenewInput struct {
	ID           string
	Agent        string
	LeaseSeconds int
	Force        bool
}

// Renew verifies ownership (unless Force) and unconditionally rewrites the
// claim with a fresh lease. A missing claim file is treated the same as an
// owned one: the agent becomes the new owner.
func (r *Registry) Renew(in RenewInput) (model.Claim, error) {
	path := r.Tree.ClaimFile(in.ID)

	if !in.Force {
		var existing model.Claim
		found, _ := store.ReadJSON(path, &existing)
		if found && existing.ClaimedBy != in.Agent {
			// The losing side of a claim-next race lands here: it thought it
			// won the claim, but another worker's write beat it to the file.
			r.logger.Warn().
				Str("request_id", in.ID).
				Str("claimed_by", existing.ClaimedBy).
				Str("attempted_by", in.Agent).
				Msg("claim owner mismatch on renew")
			return model.Claim{}, ErrOwnerMismatch
		}
	}

	claim := model.Claim{
		ID:              in.ID,
		ClaimedBy:       in.Agent,
		UTC:             timeid.NowUTCString(),
		LeaseSeconds:    in.LeaseSeconds,
		LeaseExpiresUTC: timeid.FormatUTC(timeid.Expiry(in.LeaseSeconds)),
	}
	if err := store.WriteJSON(path, claim); err != nil {
		return model.Claim{}, err
	}
	return claim, nil
}
