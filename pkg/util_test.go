package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBytesToString(t *testing.T) {
	want := "test"
	stringBytes := []byte(want)
	got := BytesToString(stringBytes)
	assert.Equal(t, want, got)
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "leaderboard.csv")
	require.NoError(t, os.WriteFile(file, []byte("rank\n"), 0o600))

	exists, err := PathExists(dir, true)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = PathExists(file, false)
	require.NoError(t, err)
	assert.True(t, exists)

	// wrong kind
	exists, err = PathExists(file, true)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = PathExists(filepath.Join(dir, "missing"), false)
	require.NoError(t, err)
	assert.False(t, exists)
}
