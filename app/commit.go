package app

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
)

// CommitStore wraps a CommitKVStore with the cache used to apply calls.
// Changes written to the deliver cache become persistent on Commit.
type CommitStore struct {
	committed gamechain.CommitKVStore
	deliver   gamechain.KVCacheWrap
}

// NewCommitStore loads the latest version of the store and prepares the
// deliver cache.
func NewCommitStore(store gamechain.CommitKVStore) (*CommitStore, error) {
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return &CommitStore{
		committed: store,
		deliver:   store.CacheWrap(),
	}, nil
}

// CommitInfo returns the current height and hash
func (cs *CommitStore) CommitInfo() (gamechain.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit flushes the deliver cache to the store, persists a new version
// and opens a fresh cache.
func (cs *CommitStore) Commit() (gamechain.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		cs.rollback()
		return gamechain.CommitID{}, errors.Wrap(err, "flush deliver cache")
	}
	res, err := cs.committed.Commit()
	if err != nil {
		cs.rollback()
		return res, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	cs.deliver = cs.committed.CacheWrap()
	return res, nil
}

// rollback drops all changes made since the last successful commit.
func (cs *CommitStore) rollback() {
	if r, ok := cs.committed.(interface{ Rollback() }); ok {
		r.Rollback()
	}
	cs.deliver = cs.committed.CacheWrap()
}

// DeliverStore returns the store that state changes are applied to.
func (cs *CommitStore) DeliverStore() gamechain.CacheableKVStore {
	return cs.deliver
}

// _gc: prefixes keys that belong to the execution environment and not to
// any contract.
const chainIDKey = "_gc:chainID"

func loadChainID(kv gamechain.ReadOnlyKVStore) (string, error) {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		return "", errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return string(v), nil
}

// saveChainID stores a chain id in the kv store.
// Returns error if already set, or invalid name
func saveChainID(kv gamechain.KVStore, chainID string) error {
	if !gamechain.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	k := []byte(chainIDKey)
	exists, err := kv.Has(k)
	if err != nil {
		return errors.Wrap(err, "load chainId")
	}
	if exists {
		return errors.Wrap(errors.ErrImmutable, "can't modify chain id after genesis init")
	}
	if err := kv.Set(k, []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chainId")
	}
	return nil
}

// Close releases the underlying database when it holds any resources.
func (cs *CommitStore) Close() {
	if c, ok := cs.committed.(interface{ Close() }); ok {
		c.Close()
	}
}
