package store

import "github.com/tresornet/tresor"

// Alias the storage types here for shorter names everywhere.

type ReadOnlyKVStore = tresor.ReadOnlyKVStore
type KVStore = tresor.KVStore
type SetDeleter = tresor.SetDeleter
type Batch = tresor.Batch
type CacheableKVStore = tresor.CacheableKVStore
type KVCacheWrap = tresor.KVCacheWrap
type CommitKVStore = tresor.CommitKVStore
type CommitID = tresor.CommitID
