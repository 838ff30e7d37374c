// Package iavl provides a CommitKVStore backed by a merkle tree that persists
// every committed version to disk. A host running on top of it survives
// restarts and can report (version, hash) commit identifiers.
package iavl

import (
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"

	"github.com/tresornet/tresor"
	"github.com/tresornet/tresor/errors"
	"github.com/tresornet/tresor/store"
)

// number of recent tree nodes cached in memory
const cacheSize = 10000

// CommitStore manages a committed state held in an iavl tree. Writes go into
// the working set and become durable on Commit.
type CommitStore struct {
	tree *iavl.MutableTree
}

var _ store.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore opens a disk-backed store under the given directory. The
// name distinguishes multiple stores sharing one directory.
func NewCommitStore(dir, name string) (*CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return &CommitStore{
		tree: iavl.NewMutableTree(db, cacheSize),
	}, nil
}

// MemCommitStore returns a store without disk backing, for tests that need
// commit semantics.
func MemCommitStore() *CommitStore {
	return &CommitStore{
		tree: iavl.NewMutableTree(dbm.NewMemDB(), cacheSize),
	}
}

// Get returns the value from the working state, nil if the key is absent.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	_, value := s.tree.Get(key)
	return value, nil
}

// Has checks the working state for the key.
func (s *CommitStore) Has(key []byte) (bool, error) {
	return s.tree.Has(key), nil
}

// Set writes to the working state.
func (s *CommitStore) Set(key, value []byte) error {
	s.tree.Set(key, value)
	return nil
}

// Delete removes the key from the working state.
func (s *CommitStore) Delete(key []byte) error {
	s.tree.Remove(key)
	return nil
}

// CacheWrap returns a scratch layer over the working state.
func (s *CommitStore) CacheWrap() tresor.KVCacheWrap {
	return store.NewBTreeCacheWrap(s, store.NewNonAtomicBatch(s), nil)
}

// Commit persists the working state as the next version.
func (s *CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the last committed state from disk. If a crash
// interrupted the previous commit, this returns a stable older state.
func (s *CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// LatestVersion describes the last committed state.
func (s *CommitStore) LatestVersion() store.CommitID {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}
}
