package store

import "sync"

// snapshot is the in-memory key-value view embedded by every store. It
// tracks which keys were written or removed since the last flush so that
// write-back stores can persist deltas instead of the whole map.
type snapshot struct {
	mu      sync.Mutex
	entries map[string]string
	dirty   map[string]struct{}
	removed map[string]struct{}
}

func newSnapshot() snapshot {
	return snapshot{
		entries: make(map[string]string),
		dirty:   make(map[string]struct{}),
		removed: make(map[string]struct{}),
	}
}

// seed replaces the entry set without marking anything dirty. Used when a
// store loads its initial state from the backend.
func (s *snapshot) seed(entries map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]string, len(entries))
	for key, value := range entries {
		s.entries[key] = value
	}
	s.dirty = make(map[string]struct{})
	s.removed = make(map[string]struct{})
}

// Contains reports whether the key is present.
func (s *snapshot) Contains(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[key]
	return ok
}

// GetString returns the value for the key, or "" if absent.
func (s *snapshot) GetString(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[key]
}

// PutString stores the value and marks the key dirty.
func (s *snapshot) PutString(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	s.dirty[key] = struct{}{}
	delete(s.removed, key)
}

// Remove deletes the key and marks it removed.
func (s *snapshot) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		return
	}
	delete(s.entries, key)
	delete(s.dirty, key)
	s.removed[key] = struct{}{}
}

// KeyList returns all keys, in no particular order.
func (s *snapshot) KeyList() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	return keys
}

// changes returns the values written and the keys removed since the last
// clearChanges call. The returned map holds copies, safe to use unlocked.
func (s *snapshot) changes() (written map[string]string, removed []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	written = make(map[string]string, len(s.dirty))
	for key := range s.dirty {
		written[key] = s.entries[key]
	}
	removed = make([]string, 0, len(s.removed))
	for key := range s.removed {
		removed = append(removed, key)
	}
	return written, removed
}

// clearChanges resets the dirty and removed sets after a successful flush.
func (s *snapshot) clearChanges() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = make(map[string]struct{})
	s.removed = make(map[string]struct{})
}

// entriesCopy returns a copy of the full entry set.
func (s *snapshot) entriesCopy() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.entries))
	for key, value := range s.entries {
		out[key] = value
	}
	return out
}
