// Package layout creates the state directory's tree. Every
// command that touches state runs Ensure first; it is safe to call
// concurrently and never fails because a directory already exists.
package layout

import (
	"os"
	"path/filepath"
)

// Tree collects the resolved paths of every well-known subdirectory and
// file under a state directory, so the rest of the coordination packages
// never hardcode a path fragment more than once.
type Tree struct {
	Root string

	Heartbeats     string
	Requests       string
	Claims         string
	Results        string
	Locks          string
	ArchiveRequest string
	ArchiveClaims  string

	BuildsDir     string
	BuildsInbox   string
	BuildsArchive string

	RunsDir string
}

// New resolves every well-known path under root without touching the
// filesystem.
func New(root string) Tree {
	ops := filepath.Join(root, "ops")
	builds := filepath.Join(root, "builds")
	return Tree{
		Root: root,

		Heartbeats:     filepath.Join(ops, "heartbeats"),
		Requests:       filepath.Join(ops, "requests"),
		Claims:         filepath.Join(ops, "claims"),
		Results:        filepath.Join(ops, "results"),
		Locks:          filepath.Join(ops, "locks"),
		ArchiveRequest: filepath.Join(ops, "archive", "requests"),
		ArchiveClaims:  filepath.Join(ops, "archive", "claims"),

		BuildsDir:     builds,
		BuildsInbox:   filepath.Join(builds, "inbox"),
		BuildsArchive: filepath.Join(builds, "inbox_archive"),

		RunsDir: filepath.Join(root, "runs"),
	}
}

// LockFile is the single well-known build lock record path.
func (t Tree) LockFile() string {
	return filepath.Join(t.Locks, "build.lock")
}

// RequestFile is the path for a request with the given id.
func (t Tree) RequestFile(id string) string {
	return filepath.Join(t.Requests, id+".json")
}

// ClaimFile is the path for a claim with the given request id.
func (t Tree) ClaimFile(id string) string {
	return filepath.Join(t.Claims, id+".json")
}

// ResultFile is the path for a result with the given request id.
func (t Tree) ResultFile(id string) string {
	return filepath.Join(t.Results, id+".json")
}

// HeartbeatFile is the path for an agent's heartbeat.
func (t Tree) HeartbeatFile(agent string) string {
	return filepath.Join(t.Heartbeats, agent+".json")
}

// CurrentBuildFile is the path for a project's current-build pointer.
func (t Tree) CurrentBuildFile(project string) string {
	return filepath.Join(t.BuildsDir, "current_"+project+".json")
}

// ArchiveRequestFile is the archived location for a request.
func (t Tree) ArchiveRequestFile(id string) string {
	return filepath.Join(t.ArchiveRequest, id+".json")
}

// ArchiveClaimFile is the archived location for a claim.
func (t Tree) ArchiveClaimFile(id string) string {
	return filepath.Join(t.ArchiveClaims, id+".json")
}

// Ensure creates every directory in the tree, idempotently.
func (t Tree) Ensure() error {
	dirs := []string{
		t.Heartbeats,
		t.Requests,
		t.Claims,
		t.Results,
		t.Locks,
		t.ArchiveRequest,
		t.ArchiveClaims,
		t.BuildsInbox,
		t.BuildsArchive,
		t.RunsDir,
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}
