package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatesUniqueDirectories(t *testing.T) {
	base := t.TempDir()

	a, err := New(base)
	require.NoError(t, err)
	b, err := New(base)
	require.NoError(t, err)

	assert.NotEqual(t, a.Root, b.Root)
	assert.True(t, strings.HasPrefix(filepath.Base(a.Root), "teamsfix-"))

	info, err := os.Stat(a.ExtractDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.Equal(t, filepath.Join(a.Root, "addin.zip"), a.ArchivePath())
}

func TestNewDefaultsToSystemTemp(t *testing.T) {
	ws, err := New("")
	require.NoError(t, err)
	defer func() { _ = ws.Cleanup() }()

	assert.True(t, strings.HasPrefix(ws.Root, os.TempDir()))
}

func TestCleanupRemovesEverything(t *testing.T) {
	ws, err := New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(ws.ArchivePath(), []byte("x"), 0644))

	require.NoError(t, ws.Cleanup())

	_, err = os.Stat(ws.Root)
	assert.True(t, os.IsNotExist(err))
}

func TestCleanupOfMissingWorkspaceIsNoError(t *testing.T) {
	ws := &Workspace{Root: filepath.Join(t.TempDir(), "gone")}
	assert.NoError(t, ws.Cleanup())
}
