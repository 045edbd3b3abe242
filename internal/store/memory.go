package store

// MemoryStore is a purely in-process Map. Flush is a no-op; the store's
// lifetime is the process.
type MemoryStore struct {
	snapshot
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshot: newSnapshot()}
}

// Flush is a no-op: there is no durable layer behind a MemoryStore.
func (s *MemoryStore) Flush() error {
	s.clearChanges()
	return nil
}
