package vault

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/amount"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/orm"
	"github.com/iov-one/gamechain/x/admin"
)

// TokenController is the subset of the token ledger a vault uses.
type TokenController interface {
	Balance(db gamechain.ReadOnlyKVStore, token, account gamechain.Address) (amount.Amount, error)
	Transfer(db gamechain.KVStore, token, src, dest gamechain.Address, amt amount.Amount) error
}

// Controller manages vaults and moves the tokens they hold.
type Controller struct {
	bucket   orm.ModelBucket
	tokens   TokenController
	registry admin.Registry
}

// NewController returns a controller moving tokens with given token
// controller.
func NewController(tokens TokenController) Controller {
	return Controller{
		bucket:   NewBucket(),
		tokens:   tokens,
		registry: admin.NewRegistry(),
	}
}

// Create stores a new vault owned by owner and returns its address.
func (c Controller) Create(db gamechain.KVStore, owner gamechain.Address) (gamechain.Address, error) {
	v := &Vault{Owner: owner}
	if err := v.Validate(); err != nil {
		return nil, errors.Wrap(err, "vault")
	}
	seq := vaultSequence()
	id, err := seq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "vault sequence")
	}
	addr := Address(id)
	if err := c.bucket.Put(db, addr, v); err != nil {
		return nil, err
	}
	if err := c.registry.Register(db, addr, owner); err != nil {
		return nil, err
	}
	return addr, nil
}

// Vault returns the vault stored under given address.
func (c Controller) Vault(db gamechain.ReadOnlyKVStore, addr gamechain.Address) (*Vault, error) {
	var v Vault
	if err := c.bucket.One(db, addr, &v); err != nil {
		return nil, errors.Wrapf(err, "vault %s", addr)
	}
	return &v, nil
}

// GetTokenBalance returns the amount of the token held by the vault.
func (c Controller) GetTokenBalance(db gamechain.ReadOnlyKVStore, vault, token gamechain.Address) (amount.Amount, error) {
	if _, err := c.Vault(db, vault); err != nil {
		return amount.Zero(), err
	}
	return c.tokens.Balance(db, token, vault)
}

// Withdraw moves amt of the token from the vault to the recipient.
// Authorization is checked by the caller.
func (c Controller) Withdraw(db gamechain.KVStore, vault, token, to gamechain.Address, amt amount.Amount) error {
	if _, err := c.Vault(db, vault); err != nil {
		return err
	}
	if err := c.tokens.Transfer(db, token, vault, to, amt); err != nil {
		return errors.Wrap(err, "withdraw")
	}
	return nil
}
