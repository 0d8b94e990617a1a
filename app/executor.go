package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Executor applies calls to the state one at a time.
//
// Every delivered call runs in its own cache: the changes of a failed
// call are discarded, the changes of a successful one are committed as a
// new version of the store. Height is the number of committed versions.
type Executor struct {
	mu      sync.Mutex
	store   *CommitStore
	handler gamechain.Handler
	logger  log.Logger
	chainID string
	height  int64
}

// NewExecutor loads the latest state of store and returns an executor
// dispatching calls to handler.
func NewExecutor(store gamechain.CommitKVStore, handler gamechain.Handler, logger log.Logger) (*Executor, error) {
	cs, err := NewCommitStore(store)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	chainID, err := loadChainID(cs.DeliverStore())
	if err != nil {
		return nil, err
	}
	info, err := cs.CommitInfo()
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return &Executor{
		store:   cs,
		handler: handler,
		logger:  logger,
		chainID: chainID,
		height:  info.Version,
	}, nil
}

// ChainID returns the chain id set at genesis, or an empty string if the
// chain was not initialized yet.
func (e *Executor) ChainID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.chainID
}

// Height returns the number of committed versions.
func (e *Executor) Height() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.height
}

// InitChain stores the chain id and loads the application state from the
// genesis. It can be called only once for a given store.
func (e *Executor) InitChain(gen Genesis, init gamechain.Initializer) (gamechain.CommitID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.chainID != "" {
		return gamechain.CommitID{}, errors.Wrapf(errors.ErrImmutable, "already initialized as %q", e.chainID)
	}
	db := e.store.DeliverStore().CacheWrap()
	if err := saveChainID(db, gen.ChainID); err != nil {
		db.Discard()
		return gamechain.CommitID{}, err
	}
	if init != nil {
		if err := init.FromGenesis(gen.AppState, db); err != nil {
			db.Discard()
			return gamechain.CommitID{}, errors.Wrap(err, "genesis")
		}
	}
	if err := db.Write(); err != nil {
		return gamechain.CommitID{}, err
	}
	e.chainID = gen.ChainID
	e.logger.Info("Chain initialized", "chain_id", gen.ChainID)
	return e.commit()
}

// context returns the context a call at given height is executed with.
func (e *Executor) context(parent gamechain.Context, height int64) gamechain.Context {
	if parent == nil {
		parent = context.Background()
	}
	ctx := gamechain.WithLogger(parent, e.logger)
	if e.chainID != "" {
		ctx = gamechain.WithChainID(ctx, e.chainID)
	}
	return gamechain.WithHeight(ctx, height)
}

// Deliver applies the call. On success all state changes are committed,
// on failure none are.
func (e *Executor) Deliver(ctx gamechain.Context, tx gamechain.Tx) (res *gamechain.DeliverResult, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	db := e.store.DeliverStore().CacheWrap()
	defer func() {
		if err != nil {
			db.Discard()
		}
	}()
	defer errors.Recover(&err)

	ctx = e.context(ctx, e.height+1)
	res, err = e.handler.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := db.Write(); err != nil {
		return nil, errors.Wrap(err, "write call changes")
	}
	if _, err := e.commit(); err != nil {
		return nil, err
	}
	return res, nil
}

// Check runs the call without applying any of its state changes.
func (e *Executor) Check(ctx gamechain.Context, tx gamechain.Tx) (res *gamechain.CheckResult, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	db := e.store.DeliverStore().CacheWrap()
	defer db.Discard()
	defer errors.Recover(&err)

	ctx = e.context(ctx, e.height+1)
	return e.handler.Check(ctx, db, tx)
}

// View gives read access to the latest state. The state cannot change
// while fn is running.
func (e *Executor) View(fn func(db gamechain.ReadOnlyKVStore) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	db := e.store.DeliverStore().CacheWrap()
	defer db.Discard()
	return fn(db)
}

func (e *Executor) commit() (gamechain.CommitID, error) {
	id, err := e.store.Commit()
	if err != nil {
		return id, err
	}
	e.height = id.Version
	e.logger.Debug("Commit synced",
		"height", id.Version,
		"hash", fmt.Sprintf("%X", id.Hash),
	)
	return id, nil
}

// Close releases the store. The executor must not be used afterwards.
func (e *Executor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store.Close()
}
