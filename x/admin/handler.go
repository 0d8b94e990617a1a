package admin

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r gamechain.Registry, auth x.Authenticator) {
	r.Handle(&EnableAdminMsg{}, EnableAdminHandler{auth: auth, registry: NewRegistry()})
}

// EnableAdminHandler extends the admin set of a contract.
type EnableAdminHandler struct {
	auth     x.Authenticator
	registry Registry
}

var _ gamechain.Handler = EnableAdminHandler{}

// Check verifies the caller owns the contract.
func (h EnableAdminHandler) Check(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &gamechain.CheckResult{}, nil
}

// Deliver adds the account to the admin set.
func (h EnableAdminHandler) Deliver(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.registry.EnableAdmin(db, msg.Contract, msg.Account); err != nil {
		return nil, err
	}
	return &gamechain.DeliverResult{Log: "admin enabled: " + msg.Account.String()}, nil
}

func (h EnableAdminHandler) validate(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*EnableAdminMsg, error) {
	var msg EnableAdminMsg
	if err := gamechain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.registry.RequireOwner(ctx, db, h.auth, msg.Contract); err != nil {
		return nil, err
	}
	return &msg, nil
}
