package nft

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
)

const (
	pathCreateMsg   = "nft/create"
	pathMintMsg     = "nft/mint"
	pathTransferMsg = "nft/transfer"
)

// CreateMsg creates a new collection owned by the caller.
type CreateMsg struct {
	Name   string
	Symbol string
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
	return errs
}

// MintMsg creates the next item of a collection. The id of the new item
// is returned as the big endian encoded result data.
type MintMsg struct {
	Collection gamechain.Address
	Recipient  gamechain.Address
}

var _ gamechain.Msg = (*MintMsg)(nil)

func (MintMsg) Path() string {
	return pathMintMsg
}

func (m *MintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Collection", m.Collection.Validate())
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	return errs
}

// TransferMsg gives an item owned by the caller to the recipient.
type TransferMsg struct {
	Collection gamechain.Address
	ID         uint64
	Recipient  gamechain.Address
}

var _ gamechain.Msg = (*TransferMsg)(nil)

func (TransferMsg) Path() string {
	return pathTransferMsg
}

func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Collection", m.Collection.Validate())
	if m.ID == 0 {
		errs = errors.AppendField(errs, "ID", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	return errs
}
