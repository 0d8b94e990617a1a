package admin

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
)

const (
	pathEnableAdminMsg = "admin/enable"
)

// EnableAdminMsg grants admin rights over Contract to Account. It must be
// sent by the owner of the contract.
type EnableAdminMsg struct {
	Contract gamechain.Address
	Account  gamechain.Address
}

var _ gamechain.Msg = (*EnableAdminMsg)(nil)

// Path returns the routing path for this message.
func (EnableAdminMsg) Path() string {
	return pathEnableAdminMsg
}

// Validate ensures both addresses are well formed.
func (m *EnableAdminMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Contract", m.Contract.Validate())
	errs = errors.AppendField(errs, "Account", m.Account.Validate())
	return errs
}
