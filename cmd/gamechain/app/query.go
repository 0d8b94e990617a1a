package app

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/amount"
	"github.com/iov-one/gamechain/app"
	"github.com/iov-one/gamechain/x/admin"
	"github.com/iov-one/gamechain/x/nft"
	"github.com/iov-one/gamechain/x/token"
	"github.com/iov-one/gamechain/x/vault"
)

// Queries give read access to the state of all contracts.
type Queries struct {
	exec *app.Executor
}

// NewQueries returns the queries served from the latest state of exec.
func NewQueries(exec *app.Executor) Queries {
	return Queries{exec: exec}
}

// Balance returns the amount of tok held by account.
func (q Queries) Balance(tok, account gamechain.Address) (amount.Amount, error) {
	var res amount.Amount
	err := q.exec.View(func(db gamechain.ReadOnlyKVStore) error {
		var err error
		res, err = token.NewController().Balance(db, tok, account)
		return err
	})
	return res, err
}

// Token returns the metadata of tok, including its total supply.
func (q Queries) Token(tok gamechain.Address) (*token.Token, error) {
	var res *token.Token
	err := q.exec.View(func(db gamechain.ReadOnlyKVStore) error {
		var err error
		res, err = token.NewController().Token(db, tok)
		return err
	})
	return res, err
}

// OwnerOf returns the owner of an item of the collection.
func (q Queries) OwnerOf(collection gamechain.Address, id uint64) (gamechain.Address, error) {
	var res gamechain.Address
	err := q.exec.View(func(db gamechain.ReadOnlyKVStore) error {
		var err error
		res, err = nft.NewController().OwnerOf(db, collection, id)
		return err
	})
	return res, err
}

// VaultBalance returns the amount of tok held by the vault.
func (q Queries) VaultBalance(v, tok gamechain.Address) (amount.Amount, error) {
	var res amount.Amount
	err := q.exec.View(func(db gamechain.ReadOnlyKVStore) error {
		var err error
		res, err = vault.NewController(token.NewController()).GetTokenBalance(db, v, tok)
		return err
	})
	return res, err
}

// IsAdmin returns true if account is an admin of the contract.
func (q Queries) IsAdmin(contract, account gamechain.Address) (bool, error) {
	var res bool
	err := q.exec.View(func(db gamechain.ReadOnlyKVStore) error {
		var err error
		res, err = admin.NewRegistry().IsAdmin(db, contract, account)
		return err
	})
	return res, err
}
