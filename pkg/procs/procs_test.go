package procs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunningEmptyListIsNil(t *testing.T) {
	assert.Nil(t, Running(nil))
	assert.Nil(t, Running([]string{}))
}

func TestRunningFindsOwnProcess(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err)
	self := filepath.Base(exe)

	got := Running([]string{self, "definitely-not-running.exe"})
	assert.Equal(t, []string{self}, got)
}
