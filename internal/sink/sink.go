// Package sink implements the two fire-and-forget write paths that never
// read before writing: agent heartbeats and per-request results. Both are
// pure latest-writer-wins overwrites with no ownership enforcement; policy
// about when it is safe to write a result belongs to the caller.
package sink

import (
	"os"

	"github.com/agentops/tri-ops/internal/layout"
	"github.com/agentops/tri-ops/internal/model"
	"github.com/agentops/tri-ops/internal/store"
	"github.com/agentops/tri-ops/internal/timeid"
)

// Sink operates on the heartbeat and result subtrees of a state directory.
type Sink struct {
	Tree layout.Tree
}

// New returns a Sink bound to tree.
func New(tree layout.Tree) *Sink {
	return &Sink{Tree: tree}
}

// HeartbeatInput carries a heartbeat write.
type HeartbeatInput struct {
	Agent       string
	Host        string
	Cycle       int
	Phase       string
	CurrentTask string
	Version     string
}

// WriteHeartbeat overwrites ops/heartbeats/<agent>.json with the current
// context. If Host is empty, the local hostname is used.
func (s *Sink) WriteHeartbeat(in HeartbeatInput) (model.Heartbeat, error) {
	host := in.Host
	if host == "" {
		if h, err := os.Hostname(); err == nil {
			host = h
		}
	}

	hb := model.Heartbeat{
		Agent:       in.Agent,
		Host:        host,
		PID:         os.Getpid(),
		Cycle:       in.Cycle,
		Phase:       in.Phase,
		CurrentTask: in.CurrentTask,
		UTC:         timeid.NowUTCString(),
		Version:     in.Version,
	}
	if err := store.WriteJSON(s.Tree.HeartbeatFile(in.Agent), hb); err != nil {
		return model.Heartbeat{}, err
	}
	return hb, nil
}

// ResultInput carries a write-result call.
type ResultInput struct {
	ID                 string
	Status             string
	PublishedBuildPath string
	BuildCommit        string
	Logs               []string
	Error              string
}

// WriteResult overwrites ops/results/<id>.json with the outcome. Logs may be
// empty; the core does not verify the caller's claim is still valid.
func (s *Sink) WriteResult(in ResultInput) (model.Result, error) {
	logs := in.Logs
	if logs == nil {
		logs = []string{}
	}
	res := model.Result{
		ID:                 in.ID,
		Status:             in.Status,
		UTC:                timeid.NowUTCString(),
		PublishedBuildPath: in.PublishedBuildPath,
		BuildCommit:        in.BuildCommit,
		Logs:               logs,
		Error:              in.Error,
	}
	if err := store.WriteJSON(s.Tree.ResultFile(in.ID), res); err != nil {
		return model.Result{}, err
	}
	return res, nil
}
