package mapfs

// Map is the flat key-value store the filesystem is built on: a case-sensitive,
// unordered string-to-string dictionary with unique keys.
//
// Mutations must be visible to subsequent reads of the same instance
// immediately. Flush is the only durability boundary; write-back
// implementations persist their accumulated changes there.
type Map interface {
	// Contains reports whether the key is present.
	Contains(key string) bool

	// GetString returns the value for the key.
	// The result is only meaningful when Contains(key) is true.
	GetString(key string) string

	// PutString stores the value under the key, replacing any previous value.
	PutString(key, value string)

	// Remove deletes the key. Removing an absent key is a no-op.
	Remove(key string)

	// KeyList returns all keys, in any order.
	KeyList() []string

	// Flush commits pending changes to durable storage.
	Flush() error
}
