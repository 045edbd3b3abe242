package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapfs-io/mapfs/pkg/mapfs"
)

func TestOpenFileStoreMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := OpenFileStore(path)
	require.NoError(t, err)
	assert.Empty(t, s.KeyList())
	assert.Equal(t, path, s.Path())
}

func TestFileStoreFlushAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := OpenFileStore(path)
	require.NoError(t, err)
	s.PutString("/", "DIRECTORY::::::::")
	s.PutString("/notes.txt", "FILE::::::::hello")
	require.NoError(t, s.Flush())

	reopened, err := OpenFileStore(path)
	require.NoError(t, err)
	assert.True(t, reopened.Contains("/"))
	assert.Equal(t, "FILE::::::::hello", reopened.GetString("/notes.txt"))
	assert.Len(t, reopened.KeyList(), 2)
}

func TestFileStoreFlushRemovesDeletedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := OpenFileStore(path)
	require.NoError(t, err)
	s.PutString("/a", "1")
	s.PutString("/b", "2")
	require.NoError(t, s.Flush())

	s.Remove("/a")
	require.NoError(t, s.Flush())

	reopened, err := OpenFileStore(path)
	require.NoError(t, err)
	assert.False(t, reopened.Contains("/a"))
	assert.True(t, reopened.Contains("/b"))
}

func TestFileStoreFlushCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "store.json")

	s, err := OpenFileStore(path)
	require.NoError(t, err)
	s.PutString("/a", "1")
	require.NoError(t, s.Flush())

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestFileStoreFlushLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.json")

	s, err := OpenFileStore(path)
	require.NoError(t, err)
	s.PutString("/a", "1")
	require.NoError(t, s.Flush())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "store.json", entries[0].Name())
}

func TestOpenFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o644))

	_, err := OpenFileStore(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mapfs.ErrStoreCorrupt))
}
