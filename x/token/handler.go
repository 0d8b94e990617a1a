package token

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/x"
	"github.com/iov-one/gamechain/x/admin"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r gamechain.Registry, auth x.Authenticator, ctrl BaseController) {
	r.Handle(&CreateMsg{}, CreateHandler{auth: auth, ctrl: ctrl})
	r.Handle(&MintMsg{}, MintHandler{auth: auth, ctrl: ctrl, registry: admin.NewRegistry()})
	r.Handle(&TransferMsg{}, TransferHandler{auth: auth, ctrl: ctrl})
}

// CreateHandler creates new tokens owned by the caller.
type CreateHandler struct {
	auth x.Authenticator
	ctrl BaseController
}

var _ gamechain.Handler = CreateHandler{}

func (h CreateHandler) Check(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &gamechain.CheckResult{}, nil
}

// Deliver stores the token and returns its address as the result data.
func (h CreateHandler) Deliver(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	addr, err := h.ctrl.Create(db, owner, Params{
		Name:      msg.Name,
		Symbol:    msg.Symbol,
		Decimals:  msg.Decimals,
		MaxSupply: msg.MaxSupply,
		AdminMint: msg.AdminMint,
	})
	if err != nil {
		return nil, err
	}
	return &gamechain.DeliverResult{Data: addr, Log: msg.Symbol + " created at " + addr.String()}, nil
}

func (h CreateHandler) validate(ctx gamechain.Context, tx gamechain.Tx) (*CreateMsg, gamechain.Address, error) {
	var msg CreateMsg
	if err := gamechain.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := x.RequireCaller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return &msg, owner, nil
}

// MintHandler issues new tokens. Tokens created with AdminMint accept
// mint requests only from their admins.
type MintHandler struct {
	auth     x.Authenticator
	ctrl     BaseController
	registry admin.Registry
}

var _ gamechain.Handler = MintHandler{}

func (h MintHandler) Check(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &gamechain.CheckResult{}, nil
}

func (h MintHandler) Deliver(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Mint(db, msg.Token, msg.Recipient, msg.Amount); err != nil {
		return nil, err
	}
	return &gamechain.DeliverResult{}, nil
}

func (h MintHandler) validate(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*MintMsg, error) {
	var msg MintMsg
	if err := gamechain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	t, err := h.ctrl.Token(db, msg.Token)
	if err != nil {
		return nil, err
	}
	if t.AdminMint {
		if err := h.registry.RequireAdmin(ctx, db, h.auth, msg.Token); err != nil {
			return nil, err
		}
	}
	return &msg, nil
}

// TransferHandler moves tokens owned by the caller.
type TransferHandler struct {
	auth x.Authenticator
	ctrl BaseController
}

var _ gamechain.Handler = TransferHandler{}

func (h TransferHandler) Check(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &gamechain.CheckResult{}, nil
}

func (h TransferHandler) Deliver(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.DeliverResult, error) {
	msg, src, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Transfer(db, msg.Token, src, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &gamechain.DeliverResult{}, nil
}

func (h TransferHandler) validate(ctx gamechain.Context, tx gamechain.Tx) (*TransferMsg, gamechain.Address, error) {
	var msg TransferMsg
	if err := gamechain.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	src, err := x.RequireCaller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return &msg, src, nil
}
