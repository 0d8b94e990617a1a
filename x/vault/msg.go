package vault

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/amount"
	"github.com/iov-one/gamechain/errors"
)

const (
	pathCreateMsg   = "vault/create"
	pathWithdrawMsg = "vault/withdraw"
)

// CreateMsg creates a new vault owned by the caller.
type CreateMsg struct{}

var _ gamechain.Msg = (*CreateMsg)(nil)

func (CreateMsg) Path() string {
	return pathCreateMsg
}

func (*CreateMsg) Validate() error {
	return nil
}

// WithdrawMsg moves tokens held by a vault to the recipient. It must be
// sent by an admin of the vault.
type WithdrawMsg struct {
	Vault     gamechain.Address
	Token     gamechain.Address
	Recipient gamechain.Address
	Amount    amount.Amount
}

var _ gamechain.Msg = (*WithdrawMsg)(nil)

func (WithdrawMsg) Path() string {
	return pathWithdrawMsg
}

func (m *WithdrawMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Vault", m.Vault.Validate())
	errs = errors.AppendField(errs, "Token", m.Token.Validate())
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	if m.Amount.IsZero() {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must be positive"))
	}
	return errs
}
