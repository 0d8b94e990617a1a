package token

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/amount"
	"github.com/iov-one/gamechain/errors"
)

const (
	pathCreateMsg   = "token/create"
	pathMintMsg     = "token/mint"
	pathTransferMsg = "token/transfer"
)

// CreateMsg creates a new token owned by the caller. Leaving MaxSupply
// zero creates a token without a supply cap.
type CreateMsg struct {
	Name      string
	Symbol    string
	Decimals  uint32
	MaxSupply amount.Amount
	AdminMint bool
}

var _ gamechain.Msg = (*CreateMsg)(nil)

func (CreateMsg) Path() string {
	return pathCreateMsg
}

func (m *CreateMsg) Validate() error {
	var errs error
	if len(m.Name) == 0 {
		errs = errors.AppendField(errs, "Name", errors.ErrEmpty)
	} else if len(m.Name) > maxNameLength {
		errs = errors.AppendField(errs, "Name", errors.ErrInput)
	}
	if !isSymbol(m.Symbol) {
		errs = errors.AppendField(errs, "Symbol", errors.Wrapf(errors.ErrInput, "invalid symbol %q", m.Symbol))
	}
	if m.Decimals > maxDecimals {
		errs = errors.AppendField(errs, "Decimals", errors.ErrInput)
	}
	return errs
}

// MintMsg issues new tokens to the recipient.
type MintMsg struct {
	Token     gamechain.Address
	Recipient gamechain.Address
	Amount    amount.Amount
}

var _ gamechain.Msg = (*MintMsg)(nil)

func (MintMsg) Path() string {
	return pathMintMsg
}

func (m *MintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Token", m.Token.Validate())
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	if m.Amount.IsZero() {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must be positive"))
	}
	return errs
}

// TransferMsg moves tokens from the caller to the destination.
type TransferMsg struct {
	Token       gamechain.Address
	Destination gamechain.Address
	Amount      amount.Amount
}

var _ gamechain.Msg = (*TransferMsg)(nil)

func (TransferMsg) Path() string {
	return pathTransferMsg
}

func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Token", m.Token.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	if m.Amount.IsZero() {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must be positive"))
	}
	return errs
}
