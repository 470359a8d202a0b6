package currentbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentops/tri-ops/internal/layout"
)

func newRegistry(t *testing.T) (*Registry, layout.Tree) {
	t.Helper()
	tree := layout.New(t.TempDir())
	require.NoError(t, tree.Ensure())
	return New(tree), tree
}

func TestRead_MissingPointerIsNotFound(t *testing.T) {
	r, _ := newRegistry(t)
	_, found, err := r.Read("widgets")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestWrite_LowercasesProject(t *testing.T) {
	r, _ := newRegistry(t)
	_, err := r.Write(WriteInput{Project: "Widgets", Path: "/srv/widgets"})
	require.NoError(t, err)

	cb, found, err := r.Read("WIDGETS")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "widgets", cb.Project)
}

func TestWrite_FullyReplacesPreviousRecord(t *testing.T) {
	r, _ := newRegistry(t)
	_, err := r.Write(WriteInput{Project: "widgets", Path: "/v1", Notes: "first"})
	require.NoError(t, err)

	cb, err := r.Write(WriteInput{Project: "widgets", Path: "/v2"})
	require.NoError(t, err)
	assert.Equal(t, "/v2", cb.Path)
	assert.Empty(t, cb.Notes, "write-current must replace, not merge, the previous record")
}

func TestField_KnownAndUnknownNames(t *testing.T) {
	r, _ := newRegistry(t)
	cb, err := r.Write(WriteInput{Project: "widgets", BuildCommit: "abc123"})
	require.NoError(t, err)

	v, ok := Field(cb, "build_commit")
	assert.True(t, ok)
	assert.Equal(t, "abc123", v)

	_, ok = Field(cb, "bogus")
	assert.False(t, ok)
}
