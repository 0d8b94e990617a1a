package token

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/amount"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/orm"
	"github.com/iov-one/gamechain/x/admin"
)

// Controller is the functionality needed by other contracts to hold and
// move tokens.
type Controller interface {
	// Balance returns the amount of the token owned by account.
	// Accounts that never held the token have a zero balance.
	Balance(db gamechain.ReadOnlyKVStore, token, account gamechain.Address) (amount.Amount, error)
	// Transfer moves amount of the token from src to dest.
	Transfer(db gamechain.KVStore, token, src, dest gamechain.Address, amt amount.Amount) error
}

// Params are the configurable properties of a new token.
type Params struct {
	Name      string
	Symbol    string
	Decimals  uint32
	MaxSupply amount.Amount
	AdminMint bool
}

// BaseController implements Controller on top of the token and balance
// buckets and also manages token creation and minting.
type BaseController struct {
	tokens   orm.ModelBucket
	balances orm.ModelBucket
	registry admin.Registry
}

var _ Controller = BaseController{}

// NewController returns a controller working on the default buckets.
func NewController() BaseController {
	return BaseController{
		tokens:   NewTokenBucket(),
		balances: NewBalanceBucket(),
		registry: admin.NewRegistry(),
	}
}

// Create stores a new token owned by owner and returns its address. The
// token is registered with the admin registry, its admin set is empty.
func (c BaseController) Create(db gamechain.KVStore, owner gamechain.Address, p Params) (gamechain.Address, error) {
	decimals := p.Decimals
	if decimals == 0 {
		decimals = DefaultDecimals
	}
	t := &Token{
		Owner:     owner,
		Name:      p.Name,
		Symbol:    p.Symbol,
		Decimals:  decimals,
		MaxSupply: p.MaxSupply.Bytes(),
		AdminMint: p.AdminMint,
	}
	if err := t.Validate(); err != nil {
		return nil, errors.Wrap(err, "token")
	}

	seq := tokenSequence()
	id, err := seq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "token sequence")
	}
	addr := TokenAddress(id)
	if err := c.tokens.Put(db, addr, t); err != nil {
		return nil, err
	}
	if err := c.registry.Register(db, addr, owner); err != nil {
		return nil, err
	}
	return addr, nil
}

// Token returns the metadata of the token stored under given address.
func (c BaseController) Token(db gamechain.ReadOnlyKVStore, token gamechain.Address) (*Token, error) {
	var t Token
	if err := c.tokens.One(db, token, &t); err != nil {
		return nil, errors.Wrapf(err, "token %s", token)
	}
	return &t, nil
}

// TotalSupply returns the amount of the token in circulation.
func (c BaseController) TotalSupply(db gamechain.ReadOnlyKVStore, token gamechain.Address) (amount.Amount, error) {
	t, err := c.Token(db, token)
	if err != nil {
		return amount.Zero(), err
	}
	return t.Supply()
}

func (c BaseController) Balance(db gamechain.ReadOnlyKVStore, token, account gamechain.Address) (amount.Amount, error) {
	var b Balance
	switch err := c.balances.One(db, BalanceKey(token, account), &b); {
	case err == nil:
		return amount.FromBytes(b.Amount)
	case errors.ErrNotFound.Is(err):
		return amount.Zero(), nil
	default:
		return amount.Zero(), err
	}
}

func (c BaseController) setBalance(db gamechain.KVStore, token, account gamechain.Address, amt amount.Amount) error {
	b := &Balance{Amount: amt.Bytes()}
	return c.balances.Put(db, BalanceKey(token, account), b)
}

// Transfer moves amt from src to dest. It fails with
// ErrInsufficientAmount if src does not hold enough.
func (c BaseController) Transfer(db gamechain.KVStore, token, src, dest gamechain.Address, amt amount.Amount) error {
	if amt.IsZero() {
		return errors.Wrap(errors.ErrAmount, "zero transfer")
	}
	if _, err := c.Token(db, token); err != nil {
		return err
	}

	have, err := c.Balance(db, token, src)
	if err != nil {
		return err
	}
	left, err := have.Sub(amt)
	if err != nil {
		return errors.Wrapf(err, "balance of %s", src)
	}
	if src.Equals(dest) {
		return nil
	}

	got, err := c.Balance(db, token, dest)
	if err != nil {
		return err
	}
	got, err = got.Add(amt)
	if err != nil {
		return errors.Wrapf(err, "balance of %s", dest)
	}

	if err := c.setBalance(db, token, src, left); err != nil {
		return err
	}
	return c.setBalance(db, token, dest, got)
}

// Mint issues amt of new tokens to dest. For capped tokens it fails with
// ErrSupplyCapExceeded if the total supply would exceed the cap.
func (c BaseController) Mint(db gamechain.KVStore, token, dest gamechain.Address, amt amount.Amount) error {
	if amt.IsZero() {
		return errors.Wrap(errors.ErrAmount, "zero mint")
	}
	t, err := c.Token(db, token)
	if err != nil {
		return err
	}
	total, err := t.Supply()
	if err != nil {
		return err
	}
	total, err = total.Add(amt)
	if err != nil {
		return errors.Wrap(err, "total supply")
	}
	capped, maxSupply, err := t.Cap()
	if err != nil {
		return err
	}
	if capped && maxSupply.LessThan(total) {
		return errors.Wrapf(ErrSupplyCapExceeded, "total supply %s above %s", total, maxSupply)
	}

	got, err := c.Balance(db, token, dest)
	if err != nil {
		return err
	}
	got, err = got.Add(amt)
	if err != nil {
		return errors.Wrapf(err, "balance of %s", dest)
	}

	t.TotalSupply = total.Bytes()
	if err := c.tokens.Put(db, token, t); err != nil {
		return err
	}
	return c.setBalance(db, token, dest, got)
}
