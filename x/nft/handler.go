package nft

import (
	"fmt"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/orm"
	"github.com/iov-one/gamechain/x"
	"github.com/iov-one/gamechain/x/admin"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r gamechain.Registry, auth x.Authenticator) {
	ctrl := NewController()
	r.Handle(&CreateMsg{}, CreateHandler{auth: auth, ctrl: ctrl})
	r.Handle(&MintMsg{}, MintHandler{auth: auth, ctrl: ctrl, registry: admin.NewRegistry()})
	r.Handle(&TransferMsg{}, TransferHandler{auth: auth, ctrl: ctrl})
}

// CreateHandler creates collections owned by the caller.
type CreateHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ gamechain.Handler = CreateHandler{}

func (h CreateHandler) Check(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &gamechain.CheckResult{}, nil
}

// Deliver stores the collection and returns its address as the result
// data.
func (h CreateHandler) Deliver(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	addr, err := h.ctrl.Create(db, owner, msg.Name, msg.Symbol)
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

// MintHandler mints items. Only admins of the collection are allowed.
type MintHandler struct {
	auth     x.Authenticator
	ctrl     Controller
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
	id, err := h.ctrl.Mint(db, msg.Collection, msg.Recipient)
	if err != nil {
		return nil, err
	}
	return &gamechain.DeliverResult{
		Data: orm.EncodeSequence(id),
		Log:  fmt.Sprintf("minted %d", id),
	}, nil
}

func (h MintHandler) validate(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*MintMsg, error) {
	var msg MintMsg
	if err := gamechain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.registry.RequireAdmin(ctx, db, h.auth, msg.Collection); err != nil {
		return nil, err
	}
	return &msg, nil
}

// TransferHandler moves an item owned by the caller.
type TransferHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ gamechain.Handler = TransferHandler{}

func (h TransferHandler) Check(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.CheckResult, error) {
	msg, src, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	owner, err := h.ctrl.OwnerOf(db, msg.Collection, msg.ID)
	if err != nil {
		return nil, err
	}
	if !owner.Equals(src) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "not the token owner")
	}
	return &gamechain.CheckResult{}, nil
}

func (h TransferHandler) Deliver(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.DeliverResult, error) {
	msg, src, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Transfer(db, msg.Collection, msg.ID, src, msg.Recipient); err != nil {
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
