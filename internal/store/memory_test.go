package store

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutGet(t *testing.T) {
	s := NewMemoryStore()

	assert.False(t, s.Contains("/a"))
	assert.Equal(t, "", s.GetString("/a"))

	s.PutString("/a", "one")
	assert.True(t, s.Contains("/a"))
	assert.Equal(t, "one", s.GetString("/a"))

	s.PutString("/a", "two")
	assert.Equal(t, "two", s.GetString("/a"))
}

func TestMemoryStoreRemove(t *testing.T) {
	s := NewMemoryStore()
	s.PutString("/a", "one")

	s.Remove("/a")
	assert.False(t, s.Contains("/a"))

	// Removing an absent key is a no-op.
	s.Remove("/missing")
	assert.False(t, s.Contains("/missing"))
}

func TestMemoryStoreKeyList(t *testing.T) {
	s := NewMemoryStore()
	s.PutString("/b", "2")
	s.PutString("/a", "1")
	s.PutString("/c", "3")

	keys := s.KeyList()
	sort.Strings(keys)
	assert.Equal(t, []string{"/a", "/b", "/c"}, keys)
}

func TestMemoryStoreFlushIsNoOp(t *testing.T) {
	s := NewMemoryStore()
	s.PutString("/a", "one")

	require.NoError(t, s.Flush())
	assert.Equal(t, "one", s.GetString("/a"))

	written, removed := s.changes()
	assert.Empty(t, written)
	assert.Empty(t, removed)
}

func TestSnapshotChangeTracking(t *testing.T) {
	s := NewMemoryStore()
	s.PutString("/a", "1")
	s.PutString("/b", "2")
	s.Remove("/a")
	s.PutString("/c", "3")
	s.Remove("/c")
	s.PutString("/c", "4")

	written, removed := s.changes()
	assert.Equal(t, map[string]string{"/b": "2", "/c": "4"}, written)
	assert.Equal(t, []string{"/a"}, removed)
}
