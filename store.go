package tresor

// Storage interfaces implemented by the store package and consumed by
// everything that touches contract state.

// ReadOnlyKVStore is the subset of store operations that cannot modify state.
type ReadOnlyKVStore interface {
	// Get returns nil if the key does not exist. An absent key is not an
	// error: contract storage is zero initialized.
	Get(key []byte) ([]byte, error)

	// Has checks existence without loading the value.
	Has(key []byte) (bool, error)
}

// KVStore is the basic interface to read and write data.
// All backing stores must implement it.
type KVStore interface {
	ReadOnlyKVStore

	// Set overwrites any previous value under key.
	Set(key, value []byte) error

	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(key []byte) error
}

// SetDeleter is the write half of KVStore, used by batches.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// Batch collects write operations to be applied together with Write.
type Batch interface {
	SetDeleter
	Write() error
}

// CacheableKVStore is a KVStore that can produce a scratch layer.
//
// A CacheWrap is the only transaction mechanism in the system: a call runs
// against the wrap and either Writes it down as a whole or Discards it, so a
// failing call leaves no trace. Like SAVEPOINT / ROLLBACK TO SAVEPOINT.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap is a scratch-pad of uncommitted data over a backing store.
type KVCacheWrap interface {
	// CacheableKVStore allows nesting wraps.
	CacheableKVStore

	// Write flushes all cached changes to the backing store.
	Write() error

	// Discard drops all cached changes, invalidating the wrap.
	Discard()
}

// CommitKVStore is a store that persists committed versions to disk.
type CommitKVStore interface {
	CacheableKVStore

	// Commit persists the working state as the next version.
	Commit() (CommitID, error)

	// LoadLatestVersion loads the last committed state. If a crash
	// interrupted the previous commit this returns a stable older state.
	LoadLatestVersion() error

	// LatestVersion describes the last committed state.
	LatestVersion() CommitID
}

// CommitID identifies a committed state by version number and merkle root.
type CommitID struct {
	Version int64
	Hash    []byte
}
