package vault

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/x"
	"github.com/iov-one/gamechain/x/admin"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r gamechain.Registry, auth x.Authenticator, tokens TokenController) {
	ctrl := NewController(tokens)
	r.Handle(&CreateMsg{}, CreateHandler{auth: auth, ctrl: ctrl})
	r.Handle(&WithdrawMsg{}, WithdrawHandler{auth: auth, ctrl: ctrl, registry: admin.NewRegistry()})
}

// CreateHandler creates vaults owned by the caller.
type CreateHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ gamechain.Handler = CreateHandler{}

func (h CreateHandler) Check(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &gamechain.CheckResult{}, nil
}

// Deliver stores the vault and returns its address as the result data.
func (h CreateHandler) Deliver(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.DeliverResult, error) {
	owner, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	addr, err := h.ctrl.Create(db, owner)
	if err != nil {
		return nil, err
	}
	return &gamechain.DeliverResult{Data: addr, Log: "vault created at " + addr.String()}, nil
}

func (h CreateHandler) validate(ctx gamechain.Context, tx gamechain.Tx) (gamechain.Address, error) {
	var msg CreateMsg
	if err := gamechain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return x.RequireCaller(ctx, h.auth)
}

// WithdrawHandler releases tokens held by a vault. Only admins of the
// vault are allowed.
type WithdrawHandler struct {
	auth     x.Authenticator
	ctrl     Controller
	registry admin.Registry
}

var _ gamechain.Handler = WithdrawHandler{}

func (h WithdrawHandler) Check(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &gamechain.CheckResult{}, nil
}

func (h WithdrawHandler) Deliver(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Withdraw(db, msg.Vault, msg.Token, msg.Recipient, msg.Amount); err != nil {
		return nil, err
	}
	return &gamechain.DeliverResult{}, nil
}

func (h WithdrawHandler) validate(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*WithdrawMsg, error) {
	var msg WithdrawMsg
	if err := gamechain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.registry.RequireAdmin(ctx, db, h.auth, msg.Vault); err != nil {
		return nil, err
	}
	return &msg, nil
}
