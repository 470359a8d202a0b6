// Package currentbuild tracks the per-project "what is live" pointer: a
// single file that is always fully replaced, never merged, so a reader can
// never observe a mix of an old and a new build's fields.
package currentbuild

import (
	"strings"

	"github.com/agentops/tri-ops/internal/layout"
	"github.com/agentops/tri-ops/internal/model"
	"github.com/agentops/tri-ops/internal/store"
	"github.com/agentops/tri-ops/internal/timeid"
)

// Registry operates on the builds/current_<project>.json pointers.
type Registry struct {
	Tree layout.Tree
}

// New returns a Registry bound to tree.
func New(tree layout.Tree) *Registry {
	return &Registry{Tree: tree}
}

// WriteInput carries a write-current-build call. Project is lowercased
// before use, matching the reference implementation.
type WriteInput struct {
	Project     string
	Path        string
	Executable  string
	BuildCommit string
	BuildID     string
	RequestID   string
	Notes       string
}

// Write fully replaces the pointer file for Project; there is no merge with
// a previous record.
func (r *Registry) Write(in WriteInput) (model.CurrentBuild, error) {
	project := strings.ToLower(in.Project)
	cb := model.CurrentBuild{
		Project:     project,
		Path:        in.Path,
		Executable:  in.Executable,
		BuildCommit: in.BuildCommit,
		UTC:         timeid.NowUTCString(),
		BuildID:     in.BuildID,
		RequestID:   in.RequestID,
		Notes:       in.Notes,
	}
	if err := store.WriteJSON(r.Tree.CurrentBuildFile(project), cb); err != nil {
		return model.CurrentBuild{}, err
	}
	return cb, nil
}

// Read returns the current-build pointer for project, and false if none has
// ever been written. Project is lowercased before lookup.
func (r *Registry) Read(project string) (model.CurrentBuild, bool, error) {
	var cb model.CurrentBuild
	found, err := store.ReadJSON(r.Tree.CurrentBuildFile(strings.ToLower(project)), &cb)
	if err != nil {
		return model.CurrentBuild{}, false, err
	}
	return cb, found, nil
}

// Field extracts a single named field from a current-build record, for
// callers (the CLI's current-build command) that print one value at a
// time rather than the whole record. found is false for an unknown field
// name, and for "notes" when it is empty, since that key is then omitted
// from the stored record. Whether the pointer itself exists is reported by
// Read, not here.
func Field(cb model.CurrentBuild, name string) (value string, found bool) {
	switch name {
	case "project":
		return cb.Project, true
	case "path":
		return cb.Path, true
	case "executable":
		return cb.Executable, true
	case "build_commit":
		return cb.BuildCommit, true
	case "utc":
		return cb.UTC, true
	case "build_id":
		return cb.BuildID, true
	case "request_id":
		return cb.RequestID, true
	case "notes":
		return cb.Notes, cb.Notes != ""
	default:
		return "", false
	}
}
