package token

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/amount"
	"github.com/iov-one/gamechain/errors"
)

const optKey = "tokens"

// GenesisToken is used to parse the json from genesis file. Tokens are
// created in the order they are listed, so their addresses are known
// upfront.
type GenesisToken struct {
	Owner     gamechain.Address `json:"owner"`
	Name      string            `json:"name"`
	Symbol    string            `json:"symbol"`
	Decimals  uint32            `json:"decimals"`
	MaxSupply amount.Amount     `json:"max_supply"`
	AdminMint bool              `json:"admin_mint"`
	Balances  []GenesisBalance  `json:"balances"`
}

// GenesisBalance is an initial balance, minted at genesis.
type GenesisBalance struct {
	Address gamechain.Address `json:"address"`
	Amount  amount.Amount     `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ gamechain.Initializer = Initializer{}

// FromGenesis will parse initial tokens from genesis and save them to
// the database
func (Initializer) FromGenesis(opts gamechain.Options, db gamechain.KVStore) error {
	var tokens []GenesisToken
	if err := opts.ReadOptions(optKey, &tokens); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	ctrl := NewController()
	for i, gt := range tokens {
		if err := gt.Owner.Validate(); err != nil {
			return errors.Wrapf(err, "token %d owner", i)
		}
		addr, err := ctrl.Create(db, gt.Owner, Params{
			Name:      gt.Name,
			Symbol:    gt.Symbol,
			Decimals:  gt.Decimals,
			MaxSupply: gt.MaxSupply,
			AdminMint: gt.AdminMint,
		})
		if err != nil {
			return errors.Wrapf(err, "token %d", i)
		}
		for _, b := range gt.Balances {
			if err := b.Address.Validate(); err != nil {
				return errors.Wrapf(err, "token %d balance", i)
			}
			if err := ctrl.Mint(db, addr, b.Address, b.Amount); err != nil {
				return errors.Wrapf(err, "token %d balance of %s", i, b.Address)
			}
		}
	}
	return nil
}
