package vault

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/orm"
)

var _ orm.CloneableData = (*Vault)(nil)

func (v *Vault) Validate() error {
	return errors.Field("Owner", v.Owner.Validate(), "")
}

func (v *Vault) Copy() orm.CloneableData {
	return &Vault{Owner: v.Owner.Clone()}
}

// NewBucket returns a bucket for vaults, keyed by the vault address.
func NewBucket() orm.ModelBucket {
	b := orm.NewBucket("vault", orm.NewSimpleObj(nil, &Vault{}))
	return orm.NewModelBucket(b)
}

func vaultSequence() orm.Sequence {
	return orm.NewSequence("vault", orm.SeqID)
}

// Address returns the address of the vault created with given sequence
// value. Tokens held by the vault are stored under this address.
func Address(seq []byte) gamechain.Address {
	return gamechain.NewCondition("vault", "seq", seq).Address()
}
