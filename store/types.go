package store

import "github.com/hodl4me/hodl"

// Short names for the storage interfaces declared in the root package.
type (
	ReadOnlyKVStore  = hodl.ReadOnlyKVStore
	SetDeleter       = hodl.SetDeleter
	KVStore          = hodl.KVStore
	Batch            = hodl.Batch
	Iterator         = hodl.Iterator
	CacheableKVStore = hodl.CacheableKVStore
	KVCacheWrap      = hodl.KVCacheWrap
	CommitKVStore    = hodl.CommitKVStore
	CommitID         = hodl.CommitID
	Model            = hodl.Model
)
