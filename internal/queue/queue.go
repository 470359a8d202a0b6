// Package queue implements enqueue and priority-ordered claim-next over the
// on-disk request tree. It is the only package that decides which request a
// worker gets next; ownership of an individual claim thereafter belongs to
// the claims package.
package queue

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/agentops/tri-ops/internal/fanout"
	"github.com/agentops/tri-ops/internal/layout"
	"github.com/agentops/tri-ops/internal/lease"
	"github.com/agentops/tri-ops/internal/model"
	"github.com/agentops/tri-ops/internal/store"
	"github.com/agentops/tri-ops/internal/timeid"
)

// Queue operates on the request and claim subtrees of a single state directory.
type Queue struct {
	Tree layout.Tree
}

// New returns a Queue bound to tree.
func New(tree layout.Tree) *Queue {
	return &Queue{Tree: tree}
}

// NormalizeProjects merges repeated --project values with a comma-separated
// --projects value, trims whitespace, and drops empties.
func NormalizeProjects(repeated []string, commaList string) []string {
	var out []string
	for _, p := range repeated {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if commaList != "" {
		for _, p := range strings.Split(commaList, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// EnqueueInput carries everything needed to create a Request.
type EnqueueInput struct {
	ID                 string
	Type               string
	Projects           []string
	Reason             string
	RequestedBy        string
	Priority           any
	DesiredBuildCommit string
	Notes              string
}

// Enqueue writes a new Request record, assigning a UUIDv4 id if none was
// supplied, and returns the written record.
func (q *Queue) Enqueue(in EnqueueInput) (model.Request, error) {
	if len(in.Projects) == 0 {
		return model.Request{}, ErrNoProjects
	}

	id := in.ID
	if id == "" {
		id = timeid.NewID()
	}
	typ := in.Type
	if typ == "" {
		typ = "rebuild"
	}

	req := model.Request{
		ID:                 id,
		Type:               typ,
		Projects:           in.Projects,
		Reason:             in.Reason,
		RequestedBy:        in.RequestedBy,
		Priority:           in.Priority,
		UTC:                timeid.NowUTCString(),
		DesiredBuildCommit: in.DesiredBuildCommit,
		Notes:              in.Notes,
	}

	if err := store.WriteJSON(q.Tree.RequestFile(id), req); err != nil {
		return model.Request{}, err
	}
	return req, nil
}

// candidate is one parsed request plus its composite sort key.
type candidate struct {
	negPriority int
	utcUnix     int64
	path        string
	id          string
	req         model.Request
}

// loadCandidate reads one request file and computes its sort key. A
// malformed or unreadable file yields ok=false so the scanner skips it
// silently, per the spec's tolerance of corrupt records.
func loadCandidate(path string) (candidate, bool) {
	var req model.Request
	ok, err := store.ReadJSON(path, &req)
	if err != nil || !ok {
		return candidate{}, false
	}

	id := idFromPath(path)
	req.ID = id

	t, parsed := timeid.ParseUTC(req.UTC)
	if !parsed {
		if mt, err := store.ModTimeUTC(path); err == nil {
			t = mt
		} else {
			t = timeid.NowUTC()
		}
	}

	return candidate{
		negPriority: -lease.PriorityValue(req.Priority),
		utcUnix:     t.Unix(),
		path:        path,
		id:          id,
		req:         req,
	}, true
}

func idFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".json")
}

// ClaimResult is the outcome of a successful claim-next.
type ClaimResult struct {
	ID      string
	Request model.Request
}

// ClaimNext scans every pending request, sorts by priority (descending),
// then utc (ascending), then filename, and atomically claims the first one
// whose claim file is absent or expired. It returns ErrNoCandidate if none
// is available.
//
// Two simultaneous invocations can both pick the same winner and both write
// its claim file; the later write wins and the loser discovers the mismatch
// on its next renew-claim. This race is accepted by design (see the spec's
// open question on claim-next step 4 vs step 5) and is not strengthened here.
func (q *Queue) ClaimNext(agent string, leaseSeconds int) (ClaimResult, error) {
	paths, err := store.ListJSONFiles(q.Tree.Requests)
	if err != nil {
		return ClaimResult{}, err
	}
	if len(paths) == 0 {
		return ClaimResult{}, ErrNoCandidate
	}

	candidates := fanout.Scan(paths, loadCandidate)

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.negPriority != b.negPriority {
			return a.negPriority < b.negPriority
		}
		if a.utcUnix != b.utcUnix {
			return a.utcUnix < b.utcUnix
		}
		return a.path < b.path
	})

	for _, c := range candidates {
		claimFile := q.Tree.ClaimFile(c.id)
		var existing model.Claim
		found, _ := store.ReadJSON(claimFile, &existing)
		if found && !lease.IsExpired(existing.LeaseExpiresUTC) {
			continue
		}

		expires := timeid.Expiry(leaseSeconds)
		claim := model.Claim{
			ID:              c.id,
			ClaimedBy:       agent,
			UTC:             timeid.NowUTCString(),
			LeaseSeconds:    leaseSeconds,
			LeaseExpiresUTC: timeid.FormatUTC(expires),
		}
		if err := store.WriteJSON(claimFile, claim); err != nil {
			return ClaimResult{}, err
		}
		return ClaimResult{ID: c.id, Request: c.req}, nil
	}

	return ClaimResult{}, ErrNoCandidate
}
