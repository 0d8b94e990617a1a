/*
Package app links together all the contracts and the execution
environment to construct the gamechain application.
*/
package app

import (
	"path/filepath"
	"strings"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/app"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/store/iavl"
	"github.com/iov-one/gamechain/x"
	"github.com/iov-one/gamechain/x/admin"
	"github.com/iov-one/gamechain/x/caller"
	"github.com/iov-one/gamechain/x/nft"
	"github.com/iov-one/gamechain/x/token"
	"github.com/iov-one/gamechain/x/utils"
	"github.com/iov-one/gamechain/x/vault"
	"github.com/tendermint/tendermint/libs/log"
)

// Authenticator returns the authentication used by all contracts: the
// caller declared in the call envelope.
func Authenticator() x.Authenticator {
	return x.ChainAuth(caller.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		caller.NewDecorator(),
		utils.NewSavepoint().DryRunCheck(),
	)
}

// Router returns a router dispatching to all contracts.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	tokens := token.NewController()
	admin.RegisterRoutes(r, authFn)
	token.RegisterRoutes(r, authFn, tokens)
	nft.RegisterRoutes(r, authFn)
	vault.RegisterRoutes(r, authFn, tokens)
	return r
}

// Stack wires up the router with the decorator chain.
func Stack() gamechain.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn))
}

// Initializer loads all contracts state from the genesis.
func Initializer() gamechain.Initializer {
	return app.ChainInitializers(
		token.Initializer{},
	)
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path. An empty path returns a store kept in
// memory.
func CommitKVStore(dbPath string) (gamechain.CommitKVStore, error) {
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}
	// The db backend adds its own extension.
	path = strings.TrimSuffix(path, filepath.Ext(path))

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}

// NewExecutor returns an executor running the full stack on the
// database stored under dbPath.
func NewExecutor(dbPath string, logger log.Logger) (*app.Executor, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return nil, err
	}
	return app.NewExecutor(kv, Stack(), logger)
}
