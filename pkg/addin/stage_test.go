package addin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestStageCopiesEverything(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "addin.dll"), "dll")
	writeFile(t, filepath.Join(src, "sub", "manifest.xml"), "xml")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "empty"), 0755))

	destRoot := t.TempDir()
	dest, err := Stage(src, destRoot, "TeamsMeetingAddin")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(destRoot, "TeamsMeetingAddin"), dest)

	data, err := os.ReadFile(filepath.Join(dest, "addin.dll"))
	require.NoError(t, err)
	assert.Equal(t, "dll", string(data))

	data, err = os.ReadFile(filepath.Join(dest, "sub", "manifest.xml"))
	require.NoError(t, err)
	assert.Equal(t, "xml", string(data))

	// Empty directories are carried over too.
	info, err := os.Stat(filepath.Join(dest, "empty"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStageReplacesExistingInstallation(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "new.dll"), "new")

	destRoot := t.TempDir()
	writeFile(t, filepath.Join(destRoot, "TeamsMeetingAddin", "stale.dll"), "old")

	dest, err := Stage(src, destRoot, "TeamsMeetingAddin")
	require.NoError(t, err)

	// Full replace, not merge.
	_, err = os.Stat(filepath.Join(dest, "stale.dll"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dest, "new.dll"))
	assert.NoError(t, err)
}

func TestStageIsIdempotent(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "addin.dll"), "dll")

	destRoot := t.TempDir()
	first, err := Stage(src, destRoot, "TeamsMeetingAddin")
	require.NoError(t, err)
	second, err := Stage(src, destRoot, "TeamsMeetingAddin")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	entries, err := os.ReadDir(second)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "addin.dll", entries[0].Name())
}

func TestStageCreatesDestinationRoot(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "addin.dll"), "dll")

	destRoot := filepath.Join(t.TempDir(), "Microsoft")
	_, err := Stage(src, destRoot, "TeamsMeetingAdd-in")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(destRoot, "TeamsMeetingAdd-in", "addin.dll"))
	assert.NoError(t, err)
}

func TestDetectVersion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "1.0.18012.2"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "1.0.17999.1"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "resources"), 0755))

	assert.Equal(t, "1.0.18012.2", DetectVersion(dir))
}

func TestDetectVersionNoneParseable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "resources"), 0755))

	assert.Empty(t, DetectVersion(dir))
}
