package addin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFolderMatchesBothSpellings(t *testing.T) {
	for _, name := range []string{"TeamsMeetingAddin", "TeamsMeetingAdd-in"} {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			require.NoError(t, os.Mkdir(filepath.Join(root, name), 0755))
			require.NoError(t, os.Mkdir(filepath.Join(root, "Unrelated"), 0755))

			got, err := FindFolder(root)
			require.NoError(t, err)
			assert.Equal(t, name, got)
		})
	}
}

func TestFindFolderIsCaseSensitive(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "teamsmeetingaddin"), 0755))

	_, err := FindFolder(root)
	assert.ErrorIs(t, err, ErrNoFolder)
}

func TestFindFolderIgnoresFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "TeamsMeetingAddin"), []byte("x"), 0644))

	_, err := FindFolder(root)
	assert.ErrorIs(t, err, ErrNoFolder)
}

func TestFindFolderPicksLexicographicFirst(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "TeamsMeetingAddin"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "TeamsMeetingAdd-in"), 0755))

	got, err := FindFolder(root)
	require.NoError(t, err)
	// '-' sorts before 'i'
	assert.Equal(t, "TeamsMeetingAdd-in", got)
}

func TestFindFolderEmpty(t *testing.T) {
	_, err := FindFolder(t.TempDir())
	assert.ErrorIs(t, err, ErrNoFolder)
}

func TestFindMSI(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested", "deep"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "nested", "deep", "Setup.MSI"), []byte("x"), 0644))

	got, err := FindMSI(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "nested", "deep", "Setup.MSI"), got)
}

func TestFindMSIPicksWalkOrderFirst(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.msi"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.msi"), []byte("x"), 0644))

	got, err := FindMSI(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "a.msi"), got)
}

func TestFindMSINoneFound(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.txt"), []byte("x"), 0644))

	got, err := FindMSI(root)
	require.NoError(t, err)
	assert.Empty(t, got)
}
