// Package gc sweeps expired state: the build lock always, claim files only
// when asked. It never touches requests, results, or heartbeats.
package gc

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/agentops/tri-ops/internal/layout"
	"github.com/agentops/tri-ops/internal/lease"
	"github.com/agentops/tri-ops/internal/logging"
	"github.com/agentops/tri-ops/internal/model"
	"github.com/agentops/tri-ops/internal/store"
)

// Collector sweeps the lock and, optionally, claim files of a state tree.
type Collector struct {
	Tree   layout.Tree
	logger zerolog.Logger
}

// New returns a Collector bound to tree.
func New(tree layout.Tree) *Collector {
	return &Collector{Tree: tree, logger: logging.WithComponent("gc")}
}

// Counts reports how many records a sweep removed.
type Counts struct {
	Locks  int `json:"locks"`
	Claims int `json:"claims"`
}

// Sweep deletes the lock file if it exists and is expired, and, if
// pruneClaims is set, deletes every claim file whose lease is expired.
// A worker that loses its claim or lock underneath a concurrent sweep simply
// observes "absent" on its next operation and must reclaim or reacquire.
func (c *Collector) Sweep(pruneClaims bool) (Counts, error) {
	var counts Counts

	var lk model.Lock
	lockPath := c.Tree.LockFile()
	found, err := store.ReadJSON(lockPath, &lk)
	if err != nil {
		return Counts{}, err
	}
	if found && lease.IsExpired(lk.LeaseExpiresUTC) {
		if err := store.Remove(lockPath); err != nil {
			return Counts{}, err
		}
		counts.Locks++
		c.logger.Info().Str("owner", lk.Owner).Str("request_id", lk.RequestID).Msg("removed expired build lock")
	}

	if !pruneClaims {
		c.logger.Debug().Int("locks", counts.Locks).Msg("sweep complete, claim pruning skipped")
		return counts, nil
	}

	paths, err := store.ListJSONFiles(c.Tree.Claims)
	if err != nil {
		if os.IsNotExist(err) {
			return counts, nil
		}
		return Counts{}, err
	}

	for _, path := range paths {
		var cl model.Claim
		ok, err := store.ReadJSON(path, &cl)
		if err != nil {
			return Counts{}, err
		}
		if !ok {
			continue
		}
		if lease.IsExpired(cl.LeaseExpiresUTC) {
			if err := store.Remove(path); err != nil {
				return Counts{}, err
			}
			counts.Claims++
		}
	}

	c.logger.Info().Int("locks", counts.Locks).Int("claims", counts.Claims).Msg("sweep complete")
	return counts, nil
}
