/*
Package caller provides the authentication middleware that reads the
account sending a call from the call envelope and makes it available to
contracts through the Authenticator interface.

Accounts are trusted as declared. Verifying that the caller controls the
account is left to the transport that builds the envelope.
*/
package caller

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
)

// CallerTx is implemented by calls that declare their sender.
type CallerTx interface {
	gamechain.Tx
	GetCaller() gamechain.Address
}

// Decorator adds the caller of a call to the context.
//
// This is just a binding from the functionality into the
// application stack, not much business logic here.
type Decorator struct {
	allowAnonymous bool
}

var _ gamechain.Decorator = Decorator{}

// NewDecorator returns a default decorator, which requires every call to
// declare a valid caller.
func NewDecorator() Decorator {
	return Decorator{}
}

// AllowAnonymous allows us to pass along calls without a caller.
func (d Decorator) AllowAnonymous() Decorator {
	d.allowAnonymous = true
	return d
}

// Check sets the caller before calling down the stack.
func (d Decorator) Check(ctx gamechain.Context, store gamechain.KVStore, tx gamechain.Tx, next gamechain.Checker) (*gamechain.CheckResult, error) {
	ctx, err := d.withCaller(ctx, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, store, tx)
}

// Deliver sets the caller before calling down the stack.
func (d Decorator) Deliver(ctx gamechain.Context, store gamechain.KVStore, tx gamechain.Tx, next gamechain.Deliverer) (*gamechain.DeliverResult, error) {
	ctx, err := d.withCaller(ctx, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

func (d Decorator) withCaller(ctx gamechain.Context, tx gamechain.Tx) (gamechain.Context, error) {
	var addr gamechain.Address
	if ctr, ok := tx.(CallerTx); ok {
		addr = ctr.GetCaller()
	}
	if addr == nil {
		if d.allowAnonymous {
			return ctx, nil
		}
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing caller")
	}
	if err := addr.Validate(); err != nil {
		return nil, errors.Wrap(err, "caller")
	}
	ctx = withCaller(ctx, addr)
	return gamechain.WithLogInfo(ctx, "caller", addr), nil
}
