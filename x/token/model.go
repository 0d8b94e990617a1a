package token

import (
	"regexp"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/amount"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/orm"
)

const (
	// DefaultDecimals is used when a token is created without
	// specifying the decimals.
	DefaultDecimals = 18

	maxDecimals   = 77
	maxNameLength = 64
)

var isSymbol = regexp.MustCompile(`^[A-Z0-9]{2,12}$`).MatchString

var _ orm.CloneableData = (*Token)(nil)

// Validate ensures the token metadata is well formed and the total
// supply respects the cap.
func (t *Token) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", t.Owner.Validate())
	switch n := len(t.Name); {
	case n == 0:
		errs = errors.AppendField(errs, "Name", errors.ErrEmpty)
	case n > maxNameLength:
		errs = errors.AppendField(errs, "Name", errors.Wrapf(errors.ErrInput, "longer than %d", maxNameLength))
	}
	if !isSymbol(t.Symbol) {
		errs = errors.AppendField(errs, "Symbol", errors.Wrapf(errors.ErrInput, "invalid symbol %q", t.Symbol))
	}
	if t.Decimals > maxDecimals {
		errs = errors.AppendField(errs, "Decimals", errors.Wrapf(errors.ErrInput, "more than %d", maxDecimals))
	}
	total, err := amount.FromBytes(t.TotalSupply)
	errs = errors.AppendField(errs, "TotalSupply", err)
	if capped, maxSupply, err := t.Cap(); err != nil {
		errs = errors.AppendField(errs, "MaxSupply", err)
	} else if capped && maxSupply.LessThan(total) {
		errs = errors.AppendField(errs, "TotalSupply", errors.Wrap(ErrSupplyCapExceeded, "above max supply"))
	}
	return errs
}

// Copy produces a new copy to fulfill the Model interface
func (t *Token) Copy() orm.CloneableData {
	return &Token{
		Owner:       t.Owner.Clone(),
		Name:        t.Name,
		Symbol:      t.Symbol,
		Decimals:    t.Decimals,
		MaxSupply:   append([]byte(nil), t.MaxSupply...),
		TotalSupply: append([]byte(nil), t.TotalSupply...),
		AdminMint:   t.AdminMint,
	}
}

// Cap returns the max supply and whether the token is capped at all.
func (t *Token) Cap() (bool, amount.Amount, error) {
	maxSupply, err := amount.FromBytes(t.MaxSupply)
	if err != nil {
		return false, amount.Zero(), err
	}
	return !maxSupply.IsZero(), maxSupply, nil
}

// Supply returns the decoded total supply.
func (t *Token) Supply() (amount.Amount, error) {
	return amount.FromBytes(t.TotalSupply)
}

var _ orm.CloneableData = (*Balance)(nil)

func (b *Balance) Validate() error {
	_, err := amount.FromBytes(b.Amount)
	return errors.Field("Amount", err, "")
}

func (b *Balance) Copy() orm.CloneableData {
	return &Balance{Amount: append([]byte(nil), b.Amount...)}
}

// NewTokenBucket returns a bucket for token metadata, keyed by the token
// address.
func NewTokenBucket() orm.ModelBucket {
	b := orm.NewBucket("token", orm.NewSimpleObj(nil, &Token{}))
	return orm.NewModelBucket(b)
}

// tokenSequence provides the ids used to derive token addresses.
func tokenSequence() orm.Sequence {
	return orm.NewSequence("token", orm.SeqID)
}

// NewBalanceBucket returns a bucket for balances, keyed by BalanceKey.
func NewBalanceBucket() orm.ModelBucket {
	b := orm.NewBucket("balance", orm.NewSimpleObj(nil, &Balance{}))
	return orm.NewModelBucket(b)
}

// BalanceKey returns the key under which the balance of account in the
// given token ledger is stored.
func BalanceKey(token, account gamechain.Address) []byte {
	key := make([]byte, 0, len(token)+len(account))
	key = append(key, token...)
	return append(key, account...)
}

// TokenAddress returns the address of the token created with given
// sequence value.
func TokenAddress(seq []byte) gamechain.Address {
	return gamechain.NewCondition("token", "seq", seq).Address()
}
