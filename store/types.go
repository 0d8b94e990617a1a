package store

import "github.com/iov-one/gamechain"

// Move references for all storage types into this package
// for shorter names everywhere

type (
	ReadOnlyKVStore  = gamechain.ReadOnlyKVStore
	SetDeleter       = gamechain.SetDeleter
	KVStore          = gamechain.KVStore
	Batch            = gamechain.Batch
	Iterator         = gamechain.Iterator
	CacheableKVStore = gamechain.CacheableKVStore
	KVCacheWrap      = gamechain.KVCacheWrap
	CommitKVStore    = gamechain.CommitKVStore
	CommitID         = gamechain.CommitID
)

// Model groups together key and value to return
type Model struct {
	Key   []byte
	Value []byte
}

// Pair constructs a model from a key-value pair
func Pair(key, value []byte) Model {
	return Model{
		Key:   key,
		Value: value,
	}
}
